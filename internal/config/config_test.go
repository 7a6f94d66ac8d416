package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config search paths at empty directories and clears
// the variables Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, key := range []string{
		"PORT", "FOLIO_ADDR", "FOLIO_DATA", "FOLIO_IMAGES", "FOLIO_LOCALE",
		"FOLIO_PRESENT_LABEL", "FOLIO_LOG_LEVEL", "GIN_MODE", "FOLIO_HASH_SALT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Addr:         DefaultAddr,
		ImagesDir:    DefaultImagesDir,
		Locale:       "en",
		PresentLabel: "Present",
		LogLevel:     "info",
		GinMode:      "release",
	}, cfg)
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_DATA", "/srv/site.yaml")
	t.Setenv("FOLIO_LOCALE", "fr")
	t.Setenv("FOLIO_PRESENT_LABEL", "Aujourd'hui")
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/site.yaml", cfg.Data)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "Aujourd'hui", cfg.PresentLabel)
	assert.Equal(t, ":3000", cfg.Addr)
}

func TestLoadAddrBeatsPort(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "3000")
	t.Setenv("FOLIO_ADDR", "127.0.0.1:9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	file := "addr: \":7000\"\nlocale: de\ndata: site.json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"), []byte(file), 0o644))
	t.Setenv("FOLIO_LOCALE", "es")
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, "es", cfg.Locale, "environment wins over the file")
	assert.Equal(t, "site.json", cfg.Data)
}

func TestLoadBadConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"), []byte("addr: [\n"), 0o644))

	_, err := Load()
	assert.ErrorContains(t, err, "reading config")
}
