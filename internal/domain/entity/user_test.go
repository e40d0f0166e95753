package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_StartsInMainMenu(t *testing.T) {
	u := NewUser(7, 70)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(7), u.ID)
	require.Equal(t, int64(70), u.ChatID)

	u.SetState(StateAwaitingBaselinePhoto)
	require.Equal(t, StateAwaitingBaselinePhoto, u.State)
}
