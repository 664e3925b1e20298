package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/esimov/svg2png"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rectSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20"><rect x="5" y="5" width="10" height="10" fill="#000"/></svg>`

// execute runs the command inside a fresh working directory holding files.
func execute(t *testing.T, env map[string]string, files map[string]string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out bytes.Buffer
	cmd := newRootCmd(func(key string) string { return env[key] })
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_NativeConvertsDirectory(t *testing.T) {
	out, err := execute(t, nil, map[string]string{
		"one.svg":   rectSVG,
		"two.svg":   rectSVG,
		"readme.md": "not an image",
	}, "--renderer", "native", "--sort")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(svg2png.DefaultOutputDir, "one.png"))
	assert.FileExists(t, filepath.Join(svg2png.DefaultOutputDir, "two.png"))
	assert.NoFileExists(t, filepath.Join(svg2png.DefaultOutputDir, "readme.png"))
	assert.Contains(t, out, "2 file(s) converted")
}

func TestRoot_EmptyDirectory(t *testing.T) {
	_, err := execute(t, nil, nil, "--quiet")
	require.NoError(t, err)

	assert.DirExists(t, svg2png.DefaultOutputDir)
}

func TestRoot_RejectsInvalidDPI(t *testing.T) {
	_, err := execute(t, map[string]string{svg2png.EnvDPI: "lots"}, nil)
	assert.Error(t, err)
	assert.NoDirExists(t, svg2png.DefaultOutputDir)
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := execute(t, nil, nil, "file.svg")
	assert.Error(t, err)
}

func TestRoot_RejectsUnknownRenderer(t *testing.T) {
	_, err := execute(t, nil, nil, "--renderer", "cairo")
	assert.Error(t, err)
}

func TestRoot_PropagatesToolExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the fake tool is a shell script")
	}
	tool := filepath.Join(t.TempDir(), "inkscape")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\nexit 7\n"), 0755))

	_, err := execute(t, nil, map[string]string{"a.svg": rectSVG}, "--tool", tool, "--quiet")
	require.Error(t, err)

	var convErr *svg2png.ConversionError
	assert.True(t, errors.As(err, &convErr))
	assert.Equal(t, 7, exitCode(err))
}

func TestExitCode_DefaultsToOne(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
}
