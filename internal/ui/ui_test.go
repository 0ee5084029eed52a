package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOKAndFail(t *testing.T) {
	var out, errOut bytes.Buffer
	Out, Err = &out, &errOut
	t.Cleanup(func() { SetTheme("classic") })

	SetTheme("mono")
	OK("saved")
	Fail("nope")

	require.Contains(t, out.String(), "ok saved")
	require.Contains(t, errOut.String(), "x nope")
}

func TestPanelString_Mono(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	p := PanelString("hello")
	lines := strings.Split(p, "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "+"))
	require.Contains(t, lines[1], "hello")
}

func TestSetTheme_UnknownFallsBackToClassic(t *testing.T) {
	SetTheme("whatever")
	require.Equal(t, "classic", Current().Name)
}
