package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" Warn ", LevelWarn},
		{"error", LevelError},
	} {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewSugaredLogger(ModuleData, &Config{Level: LevelWarn, Console: &buf})
	require.NoError(t, err)

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	_ = l.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, ModuleData)
}

func TestNoOutputIsNop(t *testing.T) {
	l, err := NewSugaredLogger("x", &Config{Level: LevelDebug})
	require.NoError(t, err)
	l.Info("nowhere") // must not panic
}

func TestGetCachesAndSetConfigResets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetConfig(&Config{Level: LevelDebug, Console: &buf}))
	defer SetConfig(DefaultConfig())

	a := Get(ModulePlot)
	assert.Same(t, a, Get(ModulePlot))

	a.Debug("first")
	assert.Contains(t, buf.String(), "first")

	require.NoError(t, SetConfig(&Config{Level: LevelError, Console: &buf}))
	b := Get(ModulePlot)
	assert.NotSame(t, a, b)
}

func TestFileLogging(t *testing.T) {
	dir := t.TempDir()
	l, err := NewSugaredLogger(ModuleCLI, &Config{
		Level:          LevelInfo,
		Path:           dir + "/scatterplot.log",
		RotationMaxAge: 1,
		RotationTime:   1,
	})
	require.NoError(t, err)
	l.Info("to file")
	assert.NoError(t, l.Sync())
}

func TestSetConfigRejectsUnusablePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	err := SetConfig(&Config{Level: LevelInfo, Path: filepath.Join(file, "sub", "scatterplot.log")})
	assert.Error(t, err)
}

func TestModulesShareLogFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SetConfig(&Config{
		Level:          LevelInfo,
		Path:           filepath.Join(dir, "scatterplot.log"),
		RotationMaxAge: 1,
		RotationTime:   1,
	}))
	defer SetConfig(DefaultConfig())

	Get(ModuleData).Info("from data")
	Get(ModulePlot).Info("from plot")
	require.NoError(t, Get(ModulePlot).Sync())

	files, err := filepath.Glob(filepath.Join(dir, "scatterplot.log.*"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	b, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(b), "from data")
	assert.Contains(t, string(b), "from plot")
}
