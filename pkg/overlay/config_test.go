package overlay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/chartdraw/pkg/types"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
magnet: weak
magnetThreshold: 12
hitThreshold: 6
closeRadius: 15
locked: true
sticker: "🚀"
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, types.MagnetModeWeak, c.Magnet)
	assert.Equal(t, 12.0, c.MagnetThreshold)
	assert.Equal(t, 6.0, c.HitThreshold)
	assert.Equal(t, 15.0, c.CloseRadius)
	assert.True(t, c.Locked)
	assert.Equal(t, "🚀", c.Sticker)
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := writeConfigFile(t, `magnet: strong`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, types.MagnetModeStrong, c.Magnet)
	assert.Equal(t, DefaultMagnetThreshold, c.MagnetThreshold)
	assert.Equal(t, DefaultHitThreshold, c.HitThreshold)
	assert.Equal(t, DefaultCloseRadius, c.CloseRadius)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "magnet: [broken")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
