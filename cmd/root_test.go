package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with args against temp XDG dirs set up
// by the caller and returns what it printed.
func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	})
	require.NoError(t, RootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func isolateXDG(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("KLONDIKE_STORE", "file")
	t.Setenv("KLONDIKE_LOG_LEVEL", "")
	t.Setenv("KLONDIKE_THEME", "")
}

func TestShowOnColdStartKeepsTheDeal(t *testing.T) {
	isolateXDG(t)

	first := runRoot(t, "show")
	second := runRoot(t, "show")
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second, "a cold start deal is saved and shown again")
}

func TestDrawPlaysTheShownDeal(t *testing.T) {
	isolateXDG(t)

	runRoot(t, "show")
	runRoot(t, "draw")
	board := runRoot(t, "show")
	assert.Contains(t, board, "Stock: 23")
}
