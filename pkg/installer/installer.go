// Package installer runs the external package installer process.
package installer

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/logging"
	"github.com/rs/zerolog"
)

// Result is the outcome of one installer invocation
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a command and waits for it to finish
type Runner interface {
	Run(ctx context.Context, name string, args []string) (Result, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	// Dir is the working directory; empty means the current one
	Dir    string
	logger zerolog.Logger
}

// NewExecRunner creates a runner executing real processes
func NewExecRunner() *ExecRunner {
	return &ExecRunner{logger: logging.GetLogger("installer")}
}

// Run executes name with args. A missing executable yields
// ErrInstallerMissing; a non-zero exit yields ErrInstallFailed with the
// exit code in the result. Output is captured and logged, never parsed.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (Result, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return Result{ExitCode: -1}, errors.Wrapf(err, errors.ErrInstallerMissing,
			"installer %s not found", name).WithDetail("installer", name)
	}

	logging.LogCommand(path, args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if stdout.Len() > 0 {
		r.logger.Debug().Str("output", strings.TrimSpace(result.Stdout)).Msg("Installer stdout")
	}
	if stderr.Len() > 0 {
		r.logger.Debug().Str("output", strings.TrimSpace(result.Stderr)).Msg("Installer stderr")
	}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		r.logger.Error().
			Err(err).
			Str("command", path).
			Int("exitCode", result.ExitCode).
			Str("stderr", result.Stderr).
			Msg("Installer failed")
		return result, errors.Wrapf(err, errors.ErrInstallFailed, "%s exited with code %d", name, result.ExitCode).
			WithDetail("exitCode", result.ExitCode)
	}

	r.logger.Info().Str("command", path).Msg("Installer finished")
	return result, nil
}
