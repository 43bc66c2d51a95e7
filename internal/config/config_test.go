package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SNAPDECK_CONFIG", "")

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 10.0, c.Snap.WheelNoise)
	require.Equal(t, 50.0, c.Snap.SwipeDistance)
	require.Equal(t, 500*time.Millisecond, c.Snap.TouchCooldown)
	require.Equal(t, 700*time.Millisecond, c.Snap.LockDuration)
	require.Equal(t, 0.6, c.Snap.VisibilityThreshold)
	require.Equal(t, 600*time.Millisecond, c.Scroll.Duration)
	require.Equal(t, 16.0, c.Input.RowHeightPx)
	require.Empty(t, c.Deck.Path)
}

func TestLoadFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "snap.toml")
	body := `
[deck]
path = "/tmp/deck.toml"

[snap]
lock_duration = "900ms"
swipe_distance = 80

[keys]
next = ["j", "down"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("SNAPDECK_SNAP_WHEEL_NOISE", "4")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/deck.toml", c.Deck.Path)
	require.Equal(t, 900*time.Millisecond, c.Snap.LockDuration)
	require.Equal(t, 80.0, c.Snap.SwipeDistance)
	require.Equal(t, 4.0, c.Snap.WheelNoise)
	require.Equal(t, []string{"j", "down"}, c.Keys["next"])
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorContains(t, err, "read config")
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[snap]\nvisibility_threshold = 1.5\n"), 0o600))
	_, err := Load(path)
	require.ErrorContains(t, err, "visibility_threshold")
}

func TestLoadRejectsScrollLongerThanLock(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "slow.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scroll]\nduration = \"1500ms\"\n"), 0o600))
	_, err := Load(path)
	require.ErrorContains(t, err, "must not exceed snap.lock_duration")

	require.NoError(t, os.WriteFile(path, []byte("[scroll]\nduration = \"700ms\"\n"), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Snap.LockDuration, cfg.Scroll.Duration)
}
