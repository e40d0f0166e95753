package report

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"face-diff-bot/internal/domain/entity"
)

func sample() *entity.ComparisonResult {
	return &entity.ComparisonResult{
		ID:         "cmp-1",
		BaselineID: "base-1",
		Differences: entity.DifferenceSet{
			{Feature: entity.FeatureLeftEyeWidth, Past: 40, Current: 50, AbsoluteChange: 10, PercentChange: 25},
			{Feature: entity.FeatureNoseWidth, Past: 30, Current: 30},
			{Feature: entity.FeatureMouthWidth, Past: 60, Current: 58, AbsoluteChange: -2, PercentChange: -3.33},
		},
		Descriptions: []string{"Left eye width has markedly become larger (+25.0%)", "Mouth width has slightly narrowed"},
		Significant:  []entity.Feature{entity.FeatureLeftEyeWidth},
	}
}

func TestText(t *testing.T) {
	out := Text(sample())

	require.Contains(t, out, "Left eye width            :  +10.00 px ( +25.0%) [enlarged]")
	require.Contains(t, out, "[unchanged]")
	require.Contains(t, out, "[reduced]")
	require.Contains(t, out, "Significant changes: Left eye width")
	require.Contains(t, out, " 1. Left eye width has markedly become larger (+25.0%)")
	require.Contains(t, out, " 2. Mouth width has slightly narrowed")
}

func TestText_NoSignificant(t *testing.T) {
	res := sample()
	res.Significant = nil

	require.Contains(t, Text(res), "No major changes were detected")
}

func TestSummary(t *testing.T) {
	require.Equal(t,
		"• Left eye width has markedly become larger (+25.0%)\n• Mouth width has slightly narrowed\n\nSignificant: Left eye width",
		Summary(sample()))
}

func TestYAML(t *testing.T) {
	out, err := YAML(sample())
	require.NoError(t, err)
	require.NotContains(t, string(out), "compared_at")

	var doc Document
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Equal(t, "cmp-1", doc.ID)
	require.Equal(t, []string{"left_eye_width"}, doc.Significant)
	require.Len(t, doc.Differences, 3)
	require.Equal(t, "mouth_width", doc.Differences[2].Feature)
	require.Equal(t, -3.33, doc.Differences[2].PercentChange)
}
