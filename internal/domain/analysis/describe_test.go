package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"face-diff-bot/internal/domain/entity"
)

func TestDescribe_NoChanges(t *testing.T) {
	d := NewDescriber(DetailedProfile())

	require.Equal(t, []string{NoChangesSentence}, d.Describe(nil))
	require.Equal(t, []string{NoChangesSentence}, d.Describe(diffsOf(
		entity.FeatureFaceWidth, 0.0,
		entity.FeatureContour, 0.0,
	)))
}

func TestDescribe_LeftEyeMarkedly(t *testing.T) {
	d := NewDescriber(DetailedProfile())

	got := d.Describe(diffsOf(entity.FeatureLeftEyeWidth, 25.0))
	require.Equal(t, []string{"Left eye width has markedly become larger (+25.0%)"}, got)
}

func TestDescribe_Decrease(t *testing.T) {
	d := NewDescriber(DetailedProfile())

	got := d.Describe(diffsOf(entity.FeatureMouthWidth, -3.2))
	require.Equal(t, []string{"Mouth width has slightly narrowed"}, got)
}

func TestDescribe_PuffinessInsight(t *testing.T) {
	d := NewDescriber(DetailedProfile())

	got := d.Describe(diffsOf(
		entity.FeatureFaceWidth, 8.0,
		entity.FeatureContour, 6.0,
	))
	require.Equal(t, []string{
		"Face width has somewhat become larger",
		"Contour has somewhat become rounder",
		InsightPuffy,
	}, got)
}

func TestDescribe_SharperInsight(t *testing.T) {
	d := NewDescriber(DetailedProfile())

	got := d.Describe(diffsOf(
		entity.FeatureContour, -12.0,
		entity.FeatureFaceWidth, -2.0,
	))
	require.Equal(t, []string{
		"Contour has markedly become sharper (-12.0%)",
		"Face width has slightly become smaller",
		InsightSharper,
	}, got)
}

func TestDescribe_InsightNeedsBothFeatures(t *testing.T) {
	d := NewDescriber(DetailedProfile())

	got := d.Describe(diffsOf(entity.FeatureFaceWidth, 8.0))
	require.Equal(t, []string{"Face width has somewhat become larger"}, got)

	got = d.Describe(diffsOf(
		entity.FeatureFaceWidth, 8.0,
		entity.FeatureContour, -6.0,
	))
	require.Len(t, got, 2)
}

func TestDescribe_Magnitude(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		percent float64
		want    string
	}{
		{"detailed below 5", DetailedProfile(), 4.99, MagnitudeSlightly},
		{"detailed at 5", DetailedProfile(), 5, MagnitudeSomewhat},
		{"detailed below 10", DetailedProfile(), 9.99, MagnitudeSomewhat},
		{"detailed at 10", DetailedProfile(), 10, MagnitudeMarkedly},
		{"coarse at 10", CoarseProfile(), 10, MagnitudeSomewhat},
		{"coarse below 15", CoarseProfile(), 14.9, MagnitudeSomewhat},
		{"coarse at 15", CoarseProfile(), 15, MagnitudeMarkedly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NewDescriber(tc.profile).Magnitude(tc.percent))
		})
	}
}

func TestDescribe_PercentShownAboveTen(t *testing.T) {
	d := NewDescriber(DetailedProfile())

	s, ok := d.Sentence(entity.Difference{Feature: entity.FeatureNoseWidth, PercentChange: 10})
	require.True(t, ok)
	require.Equal(t, "Nose width has markedly widened", s)

	s, ok = d.Sentence(entity.Difference{Feature: entity.FeatureNoseWidth, PercentChange: -10.04})
	require.True(t, ok)
	require.Equal(t, "Nose width has markedly narrowed (-10.0%)", s)
}

func TestDescribe_EveryExtractedFeatureHasWording(t *testing.T) {
	d := NewDescriber(DetailedProfile())
	for _, def := range MetricDefinitions() {
		_, ok := wordingFor(def.Feature)
		require.True(t, ok, def.Feature.Key())
		require.NotEqual(t, fallbackDirection, d.Direction(def.Feature, 1))
		require.NotEqual(t, fallbackDirection, d.Direction(def.Feature, -1))
	}
}

func TestDescribe_FallbackDirection(t *testing.T) {
	coarse := NewDescriber(CoarseProfile())

	got := coarse.Describe(diffsOf(entity.FeatureLeftEyeWidth, 7.0))
	require.Equal(t, []string{"Left eye width has somewhat changed"}, got)

	detailed := NewDescriber(DetailedProfile())
	got = detailed.Describe(diffsOf(entity.Feature(42), -20.0))
	require.Equal(t, []string{"Feature 42 has markedly changed (-20.0%)"}, got)
}

func TestDescribe_CoarseInsights(t *testing.T) {
	d := NewDescriber(CoarseProfile())

	got := d.Describe(diffsOf(
		entity.FeatureCheeks, 3.0,
		entity.FeaturePuffiness, 16.0,
		entity.FeatureSymmetry, 6.0,
	))
	require.Equal(t, []string{
		"Cheeks has slightly filled out",
		"Puffiness has markedly increased (+16.0%)",
		"Symmetry has somewhat improved",
		InsightPuffy,
		InsightBalanced,
	}, got)

	got = d.Describe(diffsOf(entity.FeatureSymmetry, 5.0))
	require.Equal(t, []string{"Symmetry has somewhat improved"}, got)
}

func TestDescribe_Deterministic(t *testing.T) {
	d := NewDescriber(DetailedProfile())
	diffs := diffsOf(
		entity.FeatureFaceWidth, 8.0,
		entity.FeatureContour, 6.0,
		entity.FeatureLeftEyeHeight, -11.5,
	)

	first := d.Describe(diffs)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, d.Describe(diffs))
	}
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("")
	require.NoError(t, err)
	require.Equal(t, ProfileDetailed, p.Name)

	p, err = ProfileByName(ProfileCoarse)
	require.NoError(t, err)
	require.Equal(t, 15.0, p.MarkedlyFrom)

	_, err = ProfileByName("poetic")
	require.Error(t, err)
}

func TestProfile_WithMarkedlyFrom(t *testing.T) {
	p, err := DetailedProfile().WithMarkedlyFrom(15)
	require.NoError(t, err)
	require.Equal(t, 15.0, p.MarkedlyFrom)
	require.Equal(t, MagnitudeSomewhat, NewDescriber(p).Magnitude(12))

	_, err = DetailedProfile().WithMarkedlyFrom(3)
	require.Error(t, err)
}
