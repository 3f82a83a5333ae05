package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "clerk.toml"))
	require.NoError(t, err)
	require.Equal(t, "data", settings.DataPath)
	require.Equal(t, VerbosityLow, settings.Verbosity)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clerk.toml")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	settings.DataPath = "/srv/books"
	settings.Toggle()
	require.NoError(t, settings.Save())

	reloaded, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/books", reloaded.DataPath)
	require.Equal(t, VerbosityHigh, reloaded.Verbosity)
}

func TestLoadSettingsRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clerk.toml")

	require.NoError(t, os.WriteFile(path, []byte("data_path = 'x'\nverbosity = 'shouting'\n"), 0644))
	_, err := LoadSettings(path)
	require.ErrorContains(t, err, "invalid verbosity")

	require.NoError(t, os.WriteFile(path, []byte("not toml at all ["), 0644))
	_, err = LoadSettings(path)
	require.ErrorContains(t, err, "cannot parse")
}

func TestSettingsToggle(t *testing.T) {
	settings := &Settings{Verbosity: VerbosityLow}
	settings.Toggle()
	require.Equal(t, VerbosityHigh, settings.Verbosity)
	settings.Toggle()
	require.Equal(t, VerbosityLow, settings.Verbosity)
}
