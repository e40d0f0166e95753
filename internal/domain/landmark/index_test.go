package landmark

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeypoints_WithinMesh(t *testing.T) {
	seen := make(map[Keypoint]bool)
	for _, k := range Keypoints() {
		require.False(t, seen[k], "duplicate keypoint %s", k)
		seen[k] = true

		idx, ok := Index(k)
		require.True(t, ok, k)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, MeshSize, k)
	}
}

func TestRegions_WithinMesh(t *testing.T) {
	for _, r := range Regions() {
		ids := RegionPoints(r)
		require.NotEmpty(t, ids, r)
		for _, id := range ids {
			require.Less(t, id, MeshSize, "region %s", r)
		}
	}
}

func TestIndex_KnownValues(t *testing.T) {
	cases := map[Keypoint]int{
		LeftEyeLeft:  33,
		RightEyeLeft: 362,
		Chin:         18,
		Forehead:     9,
	}
	for k, want := range cases {
		got, ok := Index(k)
		require.True(t, ok)
		require.Equal(t, want, got, k)
	}

	_, ok := Index(Keypoint("ear"))
	require.False(t, ok)
}

func TestRegionPoints_ReturnsCopy(t *testing.T) {
	ids := RegionPoints(RegionNose)
	ids[0] = -1
	require.Equal(t, 1, RegionPoints(RegionNose)[0])
}
