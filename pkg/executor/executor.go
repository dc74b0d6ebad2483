package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stratadb/nodeops/pkg/log"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs an external command and captures its output. It is an
// interface so tests can substitute a scripted fake without spawning
// subprocesses.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// CommandRunner is the real Executor backed by os/exec.
type CommandRunner struct {
	logger zerolog.Logger
}

// NewCommandRunner creates a new command runner
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		logger: log.WithComponent("executor"),
	}
}

// Run executes the command and waits for it to finish. A nonzero exit is not
// an error: the administration tool's exit codes are unreliable, so callers
// decide success by inspecting the output text. The stderr content is logged
// on nonzero exit. An error is returned only when the command could not be
// run at all.
func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	r.logger.Info().Str("command", obfuscate(name, args)).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.logger.Error().
				Int("exit_code", res.ExitCode).
				Str("stderr", res.Stderr).
				Msg("command exited nonzero")
			return res, nil
		}
		return res, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return res, nil
}

// obfuscate renders a command line for logging with the password flag value
// masked out.
func obfuscate(name string, args []string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for i := 0; i < len(args); i++ {
		sb.WriteString(" ")
		sb.WriteString(args[i])
		if args[i] == "-p" && i+1 < len(args) {
			sb.WriteString(" *******")
			i++
		}
	}
	return sb.String()
}
