package integration

import (
	"bytes"
	"crypto/sha512"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gbxyz/jrdap-install/cmd/jrdap-install/cmd"
	"github.com/gbxyz/jrdap-install/internal/config"
)

// TestInstaller_RunTwice serves the artifact over HTTP and runs the CLI twice,
// verifying one GET per run and byte-identical results.
//
//nolint:funlen // Integration test requires comprehensive setup and verification.
func TestInstaller_RunTwice(t *testing.T) {
	t.Parallel()

	artifact := bytes.Repeat([]byte("#!/usr/bin/env perl\n# jrdap\n"), 512)

	var (
		requests atomic.Int32
		methods  = make(chan string, 2)
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		methods <- r.Method + " " + r.URL.Path

		_, _ = w.Write(artifact)
	}))
	defer ts.Close()

	dir := t.TempDir()
	target := &config.Target{
		SourceURL:   ts.URL + "/gbxyz/jrdap/main/jrdap",
		Destination: filepath.Join(dir, "jrdap"),
		FileMode:    config.DefaultFileMode,
	}

	sums := make([][sha512.Size]byte, 0, 2)

	for i := 0; i < 2; i++ {
		var stderr bytes.Buffer

		rootCmd := cmd.NewRootCmd(target)
		rootCmd.SetErr(&stderr)
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetArgs([]string{})

		require.NoError(t, rootCmd.Execute())
		require.Equal(t, "jrdap successfully installed to "+target.Destination+"!\n", stderr.String())

		contents, err := os.ReadFile(target.Destination)
		require.NoError(t, err)

		info, err := os.Stat(target.Destination)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o755), info.Mode().Perm())

		sums = append(sums, sha512.Sum512(contents))
	}

	require.Equal(t, sha512.Sum512(artifact), sums[0])
	require.Equal(t, sums[0], sums[1])
	require.Equal(t, int32(2), requests.Load())
	require.Equal(t, "GET /gbxyz/jrdap/main/jrdap", <-methods)
	require.Equal(t, "GET /gbxyz/jrdap/main/jrdap", <-methods)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

// TestInstaller_ServerDown reports an error and leaves no file behind.
func TestInstaller_ServerDown(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	sourceURL := ts.URL + "/jrdap"
	ts.Close()

	target := &config.Target{
		SourceURL:   sourceURL,
		Destination: filepath.Join(t.TempDir(), "jrdap"),
		FileMode:    config.DefaultFileMode,
	}

	var stderr bytes.Buffer

	rootCmd := cmd.NewRootCmd(target)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{})

	require.Error(t, rootCmd.Execute())
	require.True(t, strings.HasPrefix(stderr.String(), "Error: fetch artifact: "), stderr.String())

	_, err := os.Stat(target.Destination)
	require.ErrorIs(t, err, os.ErrNotExist)
}
