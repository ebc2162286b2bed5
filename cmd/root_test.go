package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/toolbox/internal/commandlist"
	"github.com/donaldgifford/toolbox/internal/config"
)

// These tests share rootCmd and the process-wide registry, so none of them
// run in parallel.

func execute(t *testing.T, cfgPath string, args ...string) (string, string, error) {
	t.Helper()

	if cfgPath == "" {
		cfgPath = filepath.Join(t.TempDir(), "config.yaml")
	}

	t.Setenv(config.EnvConfigPath, cfgPath)
	t.Setenv("NO_COLOR", "1")

	resetFlags(rootCmd)

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := ExecuteArgs(context.Background(), args)

	return out.String(), errOut.String(), err
}

// resetFlags restores every flag in the tree to its default, since flag
// values outlive a single Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func TestExecute_Version(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123")
	t.Cleanup(func() { SetVersionInfo("dev", "none") })

	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "toolbox 1.2.3 (commit: abc123)\n", out)
}

func TestExecute_Greet(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "default", args: []string{"hello-world", "greet"}, expected: "Hello, World!\n"},
		{name: "positional", args: []string{"hello-world", "greet", "Ada"}, expected: "Hello, Ada!\n"},
		{name: "flags", args: []string{"hello-world", "greet", "--name", "Bob", "--lang", "es"}, expected: "Hola, Bob!\n"},
		{name: "shout", args: []string{"hello-world", "greet", "Ada", "--shout"}, expected: "HELLO, ADA!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestExecute_GreetUnsupportedLanguage(t *testing.T) {
	_, _, err := execute(t, "", "hello-world", "greet", "--lang", "xx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestExecute_Languages(t *testing.T) {
	out, _, err := execute(t, "", "hello-world", "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "Bonjour")
}

func TestExecute_CommandTree(t *testing.T) {
	_, _, err := execute(t, "", "version")
	require.NoError(t, err)

	for _, path := range [][]string{
		{"hello-world", "greet"},
		{"hello-world", "languages"},
		{"config", "path"},
		{"config", "show"},
		{"remote", "fetch"},
		{"commands"},
		{"version"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, "finding %v", path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestExecute_Commands(t *testing.T) {
	out, _, err := execute(t, "", "commands", "-o", "json")
	require.NoError(t, err)

	var infos []commandlist.CommandInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))

	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		keys = append(keys, config.CommandKey(info.Group, info.Name))
	}

	assert.Subset(t, keys, []string{
		"version",
		"commands",
		"hello-world greet",
		"hello-world languages",
		"config path",
		"config show",
		"remote fetch",
	})
}

func TestExecute_CommandsGroupFilter(t *testing.T) {
	out, _, err := execute(t, "", "commands", "--group", "hello-world")
	require.NoError(t, err)

	assert.Contains(t, out, "greet")
	assert.NotContains(t, out, "fetch")
}

func TestExecute_ConfigPathAndShow(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level = \"warn\"\n"), 0o644))

	out, _, err := execute(t, cfgPath, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)

	out, _, err = execute(t, cfgPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `log_level = "warn"`)

	out, _, err = execute(t, cfgPath, "config", "show", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: warn")
}

func TestExecute_ConfigFlagOverridesEnv(t *testing.T) {
	flagPath := filepath.Join(t.TempDir(), "flag.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("log_format: json\n"), 0o644))

	out, _, err := execute(t, "", "--config", flagPath, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, flagPath+"\n", out)
}

func TestExecute_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: loud\n"), 0o644))

	_, _, err := execute(t, cfgPath, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating config")
}

func TestExecute_UnknownCommand(t *testing.T) {
	_, _, err := execute(t, "", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestScanEarlyFlags(t *testing.T) {
	t.Cleanup(func() { scanEarlyFlags(nil) })

	scanEarlyFlags([]string{"hello-world", "greet", "--lang", "es", "--config", "x.toml", "-v", "--no-color"})

	assert.Equal(t, "x.toml", cfgFile)
	assert.True(t, verbose)
	assert.True(t, noColor)

	scanEarlyFlags([]string{"--help", "--config", "y.yaml"})
	assert.Equal(t, "y.yaml", cfgFile)
	assert.False(t, verbose)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("bogus"))
}

func writeFetchConfig(t *testing.T, destDir string) string {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("fetch:\n  dest_dir: "+destDir+"\n"), 0o644))

	return cfgPath
}

func fetchSource(t *testing.T) string {
	t.Helper()

	src := filepath.Join(t.TempDir(), "scripts")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "lint"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "run.sh"), []byte("echo run\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "lint", "lint.sh"), []byte("echo lint\n"), 0o644))

	return src
}

func TestExecute_RemoteFetchDefaultDest(t *testing.T) {
	src := fetchSource(t)
	destDir := t.TempDir()

	out, _, err := execute(t, writeFetchConfig(t, destDir), "remote", "fetch", src)
	require.NoError(t, err)

	want := filepath.Join(destDir, "scripts")
	assert.Contains(t, out, "info: Fetching "+src+" into "+want)
	assert.Contains(t, out, "✓ Fetched "+src+" to "+want)

	data, err := os.ReadFile(filepath.Join(want, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, "echo run\n", string(data))
}

func TestExecute_RemoteFetchSubpath(t *testing.T) {
	src := fetchSource(t)
	destDir := t.TempDir()

	_, _, err := execute(t, writeFetchConfig(t, destDir), "remote", "fetch", src, "--subpath", "lint")
	require.NoError(t, err)

	want := filepath.Join(destDir, "lint")
	assert.FileExists(t, filepath.Join(want, "lint.sh"))
	assert.NoFileExists(t, filepath.Join(want, "run.sh"))
}

func TestExecute_RemoteFetchExplicitDest(t *testing.T) {
	src := fetchSource(t)
	dest := filepath.Join(t.TempDir(), "elsewhere")

	_, _, err := execute(t, "", "remote", "fetch", src, dest)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dest, "run.sh"))
}

func TestExecute_ConfigShowWarnsWithoutFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.yaml")

	_, errOut, err := execute(t, missing, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, errOut, "warning: no config file at "+missing)
}

func TestReportsErrorThroughWriter(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var errOut bytes.Buffer

	c := &cobra.Command{Use: "x"}
	c.SetErr(&errOut)

	newWriter(c).Error(errors.New("boom"))
	assert.Equal(t, "error: boom\n", errOut.String())
}
