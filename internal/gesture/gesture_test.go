package gesture

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func wheelUp() tea.MouseMsg {
	return tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
}

func wheelDown() tea.MouseMsg {
	return tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
}

func TestRecognizer_FiresAtThreshold(t *testing.T) {
	r := Recognizer{Threshold: 3}
	require.False(t, r.Pull(true))
	require.False(t, r.Pull(true))
	require.Equal(t, Pulling, r.Phase())
	require.True(t, r.Pull(true))
	require.Equal(t, Refreshing, r.Phase())

	require.False(t, r.Pull(true), "no second fire while refreshing")
	r.Settle()
	require.Equal(t, Idle, r.Phase())
}

func TestRecognizer_PullAwayFromTopResets(t *testing.T) {
	r := Recognizer{}
	r.Pull(true)
	r.Pull(false)
	require.Zero(t, r.Distance())
	require.Equal(t, "idle", r.Phase().String())
}

func TestAdapter_EmitsRefreshRequested(t *testing.T) {
	a := NewAdapter(100, 2)

	require.Nil(t, a.Update(wheelUp(), 60, true))
	cmd := a.Update(wheelUp(), 60, true)
	require.NotNil(t, cmd)
	require.Equal(t, RefreshRequestedMsg{}, cmd())
}

func TestAdapter_DisabledOnWideViewports(t *testing.T) {
	a := NewAdapter(100, 1)
	require.False(t, a.Enabled(100))
	require.Nil(t, a.Update(wheelUp(), 120, true))
	require.Empty(t, a.View(120, "*"))

	off := NewAdapter(0, 1)
	require.False(t, off.Enabled(10))
}

func TestAdapter_OtherInputReleases(t *testing.T) {
	a := NewAdapter(100, 3)
	a.Update(wheelUp(), 50, true)
	a.Update(wheelUp(), 50, true)
	a.Update(wheelDown(), 50, true)
	require.Zero(t, a.Recognizer.Distance())

	a.Update(wheelUp(), 50, true)
	a.Update(tea.KeyMsg{Type: tea.KeyDown}, 50, true)
	require.Equal(t, Idle, a.Recognizer.Phase())
}

func TestAdapter_ViewStates(t *testing.T) {
	a := NewAdapter(100, 3)
	require.Empty(t, a.View(50, "*"))

	a.Update(wheelUp(), 50, true)
	require.Contains(t, a.View(50, "*"), "pull to refresh")

	a.Update(wheelUp(), 50, true)
	a.Update(wheelUp(), 50, true)
	v := a.View(50, "*")
	require.Contains(t, v, "refreshing")
	require.False(t, strings.Contains(v, "pull to refresh"))

	a.Settle()
	require.Empty(t, a.View(50, "*"))
}
