package main

// Helpers shared by the CLI tests.

import (
	"bytes"
	"strings"
	"testing"
)

// newTestEnv returns an Environment wired to in-memory buffers.
func newTestEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := DefaultEnv()
	env.Stdin = strings.NewReader("")
	env.Stdout = &stdout
	env.Stderr = &stderr
	env.StdinIsTerminal = func() bool { return false }
	return env, &stdout, &stderr
}

// clearPageEnv neutralizes MD2PAGE_* variables so host settings do not
// leak into test runs. Tests using it cannot run in parallel.
func clearPageEnv(t *testing.T) {
	t.Helper()

	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
}

// mustParseFlags parses flags and fails the test on error.
func mustParseFlags(t *testing.T, args ...string) (*convertFlags, []string) {
	t.Helper()

	flags, positional, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags(%v) error = %v", args, err)
	}
	return flags, positional
}
