package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cursorlock/internal/display"
)

func testMonitors() []*display.Monitor {
	return []*display.Monitor{
		{ID: `\\.\DISPLAY2`, Name: "LG HDR 4K", X: -1920, Y: 0, Width: 1920, Height: 1080},
		{ID: `\\.\DISPLAY1`, Name: "DELL U2720Q", X: 0, Y: 0, Width: 2560, Height: 1440, Primary: true},
	}
}

func TestRootCommand(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"monitors", "version"} {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}

	assert.Equal(t, "cursorlock", rootCmd.Name())
	assert.NotNil(t, rootCmd.RunE)
	assert.Error(t, rootCmd.Args(rootCmd, []string{"extra"}), "no positional arguments")
}

func TestWriteMonitors(t *testing.T) {
	var buf bytes.Buffer
	writeMonitors(&buf, testMonitors())
	out := buf.String()

	for _, want := range []string{
		"Detected 2 monitor(s):",
		"Monitor 1:",
		"LG HDR 4K",
		"Resolution: 1920x1080",
		"Position:   (-1920, 0)",
		"Primary:    Yes",
		"Total virtual screen: 4480x1440",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMonitorsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeMonitorsJSON(&buf, testMonitors()))

	var info DisplayInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	require.Len(t, info.Monitors, 2)
	assert.Equal(t, 1, info.Monitors[0].Index)
	assert.Equal(t, "DELL U2720Q", info.Monitors[1].Name)
	assert.True(t, info.Monitors[1].Primary)
	assert.Empty(t, info.Error)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, buf.String(), "cursorlock "+Version)
	assert.Contains(t, buf.String(), "commit:")
}
