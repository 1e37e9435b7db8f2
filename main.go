package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/h12o/qrfi/internal/config"
	"github.com/h12o/qrfi/internal/render"
	"github.com/h12o/qrfi/wifi"
)

var (
	// Version is the version of the application. It is set at build time.
	Version string = "dev"
)

// main is the entry point of the application
func main() {
	var (
		fs         = flag.NewFlagSet("qrfi", flag.ExitOnError)
		authName   string
		password   string
		hidden     bool
		formatName string
		configPath = fs.String("config", "", "path to config toml file (env: QRFI_CONFIG)")
		verbose    = fs.Bool("verbose", false, "enable debug logging on stderr")
		version    = fs.Bool("version", false, "display version")
	)
	fs.StringVar(&authName, "authentication-type", "", "Wi-Fi authentication type (WEP, WPA, nopass)")
	fs.StringVar(&authName, "t", "", "alias for -authentication-type")
	fs.StringVar(&password, "password", "", "Wi-Fi password (ignored if authentication-type is 'nopass')")
	fs.StringVar(&password, "p", "", "alias for -password")
	fs.BoolVar(&hidden, "hidden", false, "set when the SSID is hidden")
	fs.BoolVar(&hidden, "H", false, "alias for -hidden")
	fs.StringVar(&formatName, "format", "", "output format (ascii, png, svg)")
	fs.StringVar(&formatName, "f", "", "alias for -format")

	root := &ffcli.Command{
		Name:       "qrfi",
		ShortUsage: "qrfi [flags] [ssid]",
		ShortHelp:  "A CLI Wi-Fi QR Code Generator",
		LongHelp:   longHelp(),
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("QRFI")},
		Exec: func(ctx context.Context, args []string) error {
			if *version {
				fmt.Println(Version)
				return nil
			}

			level := slog.LevelWarn
			if *verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			defaults, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			opts := defaults.Render
			if formatName != "" {
				if opts.Format, err = render.ParseFormat(formatName); err != nil {
					return err
				}
			}
			auth := defaults.Auth
			if authName != "" {
				if auth, err = wifi.ParseAuthType(authName); err != nil {
					return err
				}
			}

			piped := !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
			ssid, err := readSSID(args, os.Stdin, piped)
			if err != nil {
				return err
			}

			return run(os.Stdout, ssid, password, auth, hidden, opts)
		},
	}

	if err := root.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// longHelp renders the examples block shown under -h.
func longHelp() string {
	heading := lipgloss.NewStyle().Bold(true).Underline(true)
	return heading.Render("Examples:") + "\n" +
		"  qrfi SSID -p PASSWORD\n" +
		"  qrfi SSID -p PASSWORD -f png > qr.png\n" +
		"  echo SSID | qrfi -p PASSWORD\n\n" +
		"QR Code is a registered trademark of DENSO WAVE INCORPORATED in Japan and in other countries."
}
