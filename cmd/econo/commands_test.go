package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMacroCommand(t *testing.T) {
	out, err := run(t, "macro")
	require.NoError(t, err)
	assert.Contains(t, out, "2,400")
}

func TestMarketCommand(t *testing.T) {
	out, err := run(t, "market", "--a", "100", "--b", "1", "--c", "20", "--d", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "60")
}

func TestLoanCommandRejectsZeroTerm(t *testing.T) {
	_, err := run(t, "loan", "--months", "0")
	assert.Error(t, err)
}

func TestIRRCommand(t *testing.T) {
	out, err := run(t, "irr", "--rate", "0.1", "--flows=-1000,1100")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
