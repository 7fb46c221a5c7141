package meta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, "depth: 2\nmodel: paranoid\nbudget: 750ms\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.Depth)
		require.Equal(t, "paranoid", cfg.Model)
		require.Equal(t, 750*time.Millisecond, cfg.Budget)
		require.Equal(t, DefaultK, cfg.K)
		require.Equal(t, DefaultRadius, cfg.Radius)
		require.Equal(t, DIMENSION, cfg.Dimension)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depth: [1\n"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "depth: -3\nradius: 0\n"))
		require.ErrorContains(t, err, "depth -3")
		require.ErrorContains(t, err, "radius 0")
	})
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
