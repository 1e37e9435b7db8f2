package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/h12o/qrfi/internal/render"
	"github.com/h12o/qrfi/wifi"
)

// readSSID returns the SSID from args when present. When absent and input
// is piped in, the SSID is read from stdin with trailing newlines stripped.
func readSSID(args []string, stdin io.Reader, piped bool) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !piped {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read SSID from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// run validates the network configuration, encodes it, and writes the
// rendered QR code to w.
func run(w io.Writer, ssid, password string, auth wifi.AuthType, hidden bool, opts render.Options) error {
	if auth == wifi.AuthNopass {
		// An open network takes no password; drop it rather than fail.
		password = ""
	}

	cfg := wifi.Config{
		SSID:     ssid,
		Password: wifi.Password{Value: password, Auth: auth},
		Hidden:   hidden,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	payload := cfg.MECARD()
	slog.Debug("encoded network configuration",
		"ssid_bytes", len(ssid),
		"password_bytes", len(password),
		"auth", auth.String(),
		"hidden", hidden,
		"format", opts.Format.String())

	out, err := render.Render(payload, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
