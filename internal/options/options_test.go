package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	size    int
	enabled bool
}

func withSize(size int) Option[*config] {
	return New(func(c *config) error {
		if size <= 0 {
			return errors.New("size must be positive")
		}
		c.size = size

		return nil
	})
}

func withEnabled(enabled bool) Option[*config] {
	return NoError(func(c *config) {
		c.enabled = enabled
	})
}

func TestApply(t *testing.T) {
	cfg := &config{}
	err := Apply(cfg, withSize(64), withEnabled(true))
	require.NoError(t, err)
	require.Equal(t, 64, cfg.size)
	require.True(t, cfg.enabled)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &config{size: 1}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 1, cfg.size)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &config{}
	err := Apply(cfg, withSize(-1), withEnabled(true))
	require.Error(t, err)
	require.False(t, cfg.enabled, "options after the failing one must not apply")
}
