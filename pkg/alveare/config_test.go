package alveare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig(0.55)
	require.NoError(t, cfg.Validate())
	require.Equal(t, 20, cfg.MinWords)
	require.Equal(t, 80, cfg.MaxWords)
	require.Equal(t, 50, cfg.MaxAttempts)
	require.Equal(t, 100, cfg.MaxPangramAttempts)
	require.Equal(t, 7, cfg.PangramBonus)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"fraction zero", func(c *Config) { c.ThresholdFraction = 0 }, ErrInvalidConfig},
		{"fraction above one", func(c *Config) { c.ThresholdFraction = 1.2 }, ErrInvalidConfig},
		{"inverted window", func(c *Config) { c.MinWords, c.MaxWords = 50, 10 }, ErrInvalidConfig},
		{"no attempts", func(c *Config) { c.MaxAttempts = 0 }, ErrInvalidConfig},
		{"uppercase letter", func(c *Config) { c.Vowels = "aeIou" }, ErrInvalidConfig},
		{"shared letter", func(c *Config) { c.Consonants = "abcdfg" }, ErrInvalidConfig},
		{"few vowels", func(c *Config) { c.Vowels = "aaee" }, ErrAlphabetInsufficient},
		{"few consonants", func(c *Config) { c.Consonants = "bcdf" }, ErrAlphabetInsufficient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(0.7)
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestGeneratorCopiesConfig(t *testing.T) {
	cfg := DefaultConfig(0.55)
	g, err := New(cfg)
	require.NoError(t, err)
	cfg.MinWords = 1
	require.Equal(t, DefaultMinWords, g.Config().MinWords)
}
