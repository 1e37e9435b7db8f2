// Package config loads optional rendering and encoding defaults from a TOML
// file. Command-line flags take precedence over anything loaded here.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/h12o/qrfi/internal/render"
	"github.com/h12o/qrfi/wifi"
)

// file represents the structure of the config TOML file. We use pointers so
// we can distinguish between a missing value and an explicit zero. This
// allows users to override only the settings they want.
type file struct {
	Format             *string `toml:"Format,omitempty"`
	Size               *int    `toml:"Size,omitempty"`
	MinSize            *int    `toml:"MinSize,omitempty"`
	Recovery           *string `toml:"Recovery,omitempty"`
	Inverse            *bool   `toml:"Inverse,omitempty"`
	AuthenticationType *string `toml:"AuthenticationType,omitempty"`
}

// Defaults holds the resolved settings: the built-in defaults overlaid with
// whatever the config file provides.
type Defaults struct {
	Render render.Options
	Auth   wifi.AuthType
}

// Load reads the TOML file at path and applies it over the built-in
// defaults. If the path is empty, the built-in defaults are returned
// unchanged.
func Load(path string) (Defaults, error) {
	d := Defaults{
		Render: render.DefaultOptions(),
		Auth:   wifi.AuthWPA,
	}
	if path == "" {
		return d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return d, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if f.Format != nil {
		format, err := render.ParseFormat(*f.Format)
		if err != nil {
			return d, fmt.Errorf("config %s: %w", path, err)
		}
		d.Render.Format = format
	}
	if f.Size != nil {
		if *f.Size <= 0 {
			return d, fmt.Errorf("config %s: Size must be positive, got %d", path, *f.Size)
		}
		d.Render.Size = *f.Size
	}
	if f.MinSize != nil {
		if *f.MinSize <= 0 {
			return d, fmt.Errorf("config %s: MinSize must be positive, got %d", path, *f.MinSize)
		}
		d.Render.MinSize = *f.MinSize
	}
	if f.Recovery != nil {
		recovery, err := render.ParseRecovery(*f.Recovery)
		if err != nil {
			return d, fmt.Errorf("config %s: %w", path, err)
		}
		d.Render.Recovery = recovery
	}
	if f.Inverse != nil {
		d.Render.Inverse = *f.Inverse
	}
	if f.AuthenticationType != nil {
		auth, err := wifi.ParseAuthType(*f.AuthenticationType)
		if err != nil {
			return d, fmt.Errorf("config %s: %w", path, err)
		}
		d.Auth = auth
	}

	return d, nil
}
