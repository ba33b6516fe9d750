package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAutoSaveSettings_MissingFile(t *testing.T) {
	s := LoadAutoSaveSettings(filepath.Join(t.TempDir(), "nope.json"))

	assert.Empty(t, s.PrimaryPath)
	assert.Empty(t, s.SecondaryPath)
}

func TestLoadAutoSaveSettings_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	s := LoadAutoSaveSettings(path)

	assert.Empty(t, s.PrimaryPath)
}

func TestAutoSaveSettings_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	want := &AutoSaveSettings{PrimaryPath: "/mnt/usb", SecondaryPath: "/srv/backup"}
	require.NoError(t, want.Save(path))

	got := LoadAutoSaveSettings(path)

	assert.Equal(t, want, got)
}

func TestEffectivePath_PrefersPrimary(t *testing.T) {
	primary := t.TempDir()
	s := &AutoSaveSettings{PrimaryPath: primary, SecondaryPath: t.TempDir()}

	assert.Equal(t, primary, s.EffectivePath(filepath.Join(t.TempDir(), "fallback")))
}

func TestEffectivePath_FallsBackToSecondary(t *testing.T) {
	secondary := t.TempDir()
	s := &AutoSaveSettings{PrimaryPath: "/definitely/not/there", SecondaryPath: secondary}

	assert.Equal(t, secondary, s.EffectivePath(filepath.Join(t.TempDir(), "fallback")))
}

func TestEffectivePath_CreatesFallback(t *testing.T) {
	fallback := filepath.Join(t.TempDir(), "fallback")
	s := &AutoSaveSettings{}

	got := s.EffectivePath(fallback)

	assert.Equal(t, fallback, got)
	info, err := os.Stat(fallback)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
