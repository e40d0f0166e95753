package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"face-diff-bot/internal/domain/analysis"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DESCRIPTION_PROFILE", "")
	t.Setenv("MARKEDLY_THRESHOLD", "")
	t.Setenv("SIGNIFICANCE_THRESHOLD", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, analysis.ProfileDetailed, cfg.Analysis.Profile)
	require.Equal(t, analysis.DefaultSignificanceThreshold, cfg.Analysis.SignificanceThreshold)

	profile, err := cfg.Analysis.DescriptionProfile()
	require.NoError(t, err)
	require.Equal(t, 10.0, profile.MarkedlyFrom)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DESCRIPTION_PROFILE", "coarse")
	t.Setenv("MARKEDLY_THRESHOLD", "12.5")
	t.Setenv("SIGNIFICANCE_THRESHOLD", "3")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3.0, cfg.Analysis.SignificanceThreshold)

	profile, err := cfg.Analysis.DescriptionProfile()
	require.NoError(t, err)
	require.Equal(t, analysis.ProfileCoarse, profile.Name)
	require.Equal(t, 12.5, profile.MarkedlyFrom)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad profile":   {"DESCRIPTION_PROFILE", "poetic"},
		"bad threshold": {"SIGNIFICANCE_THRESHOLD", "five"},
		"negative":      {"SIGNIFICANCE_THRESHOLD", "-1"},
		"too low":       {"MARKEDLY_THRESHOLD", "2"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("DESCRIPTION_PROFILE", "")
			t.Setenv("MARKEDLY_THRESHOLD", "")
			t.Setenv("SIGNIFICANCE_THRESHOLD", "")
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			require.Error(t, err)
		})
	}
}
