package telegram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"face-diff-bot/internal/domain/entity"
)

func TestFailureText(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		text   string
		toMenu bool
	}{
		{"no face", fmt.Errorf("current photo: %w", entity.ErrNoFaceFound), msgNoFace, false},
		{"missing landmark", &entity.MissingLandmarkError{Keypoint: "chin", Index: 18}, msgNoFace, false},
		{"no baseline", entity.ErrBaselineNotFound, msgNoBaseline, true},
		{"other", errors.New("decode failed"), msgProcessingError, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, toMenu := failureText(tc.err)
			require.Equal(t, tc.text, text)
			require.Equal(t, tc.toMenu, toMenu)
		})
	}
}
