package config

import (
	"os"
	"path/filepath"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h12o/qrfi/internal/render"
	"github.com/h12o/qrfi/wifi"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, render.DefaultOptions(), d.Render)
	assert.Equal(t, wifi.AuthWPA, d.Auth)
}

func TestLoadOverridesOnlyProvidedKeys(t *testing.T) {
	path := writeConfig(t, `
Format = "png"
Size = 1024
`)
	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, render.FormatPNG, d.Render.Format)
	assert.Equal(t, 1024, d.Render.Size)
	// Untouched keys keep their built-in defaults.
	assert.Equal(t, qrcode.Medium, d.Render.Recovery)
	assert.Equal(t, 200, d.Render.MinSize)
	assert.False(t, d.Render.Inverse)
	assert.Equal(t, wifi.AuthWPA, d.Auth)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
Format = "svg"
Size = 256
MinSize = 400
Recovery = "high"
Inverse = true
AuthenticationType = "nopass"
`)
	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, render.FormatSVG, d.Render.Format)
	assert.Equal(t, 256, d.Render.Size)
	assert.Equal(t, 400, d.Render.MinSize)
	assert.Equal(t, qrcode.High, d.Render.Recovery)
	assert.True(t, d.Render.Inverse)
	assert.Equal(t, wifi.AuthNopass, d.Auth)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"bad format", `Format = "jpeg"`},
		{"bad recovery", `Recovery = "maximum"`},
		{"bad auth type", `AuthenticationType = "enterprise"`},
		{"zero size", `Size = 0`},
		{"negative min size", `MinSize = -1`},
		{"malformed toml", `Format = `},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.contents))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}
