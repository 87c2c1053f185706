package installer

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-nuget")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestExecRunnerSuccess(t *testing.T) {
	script := writeScript(t, `echo "installing $2"`)

	result, err := NewExecRunner().Run(context.Background(), script, []string{"install", "Contoso.Widgets"})

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "installing Contoso.Widgets")
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	script := writeScript(t, `echo "Unable to find package" >&2; exit 3`)

	result, err := NewExecRunner().Run(context.Background(), script, nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallFailed))
	assert.Equal(t, 3, result.ExitCode)
	assert.Contains(t, result.Stderr, "Unable to find package")
	assert.Equal(t, 3, errors.GetErrorDetails(err)["exitCode"])
}

func TestExecRunnerMissingExecutable(t *testing.T) {
	_, err := NewExecRunner().Run(context.Background(), filepath.Join(t.TempDir(), "nuget.exe"), nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallerMissing))
}

func TestExecRunnerWorkingDir(t *testing.T) {
	script := writeScript(t, `pwd`)
	dir := t.TempDir()

	runner := NewExecRunner()
	runner.Dir = dir
	result, err := runner.Run(context.Background(), script, nil)

	require.NoError(t, err)
	resolved, _ := filepath.EvalSymlinks(dir)
	assert.Contains(t, []string{dir, resolved}, strings.TrimSpace(result.Stdout))
}
