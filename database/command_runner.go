package database

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Command is an external dump tool invocation. Env is added to the
// environment of the current process.
type Command struct {
	Path string
	Args []string
	Env  []string
}

//counterfeiter:generate -o fakes/fake_command_runner.go . CommandRunner
type CommandRunner interface {
	Run(ctx context.Context, command Command) error
}

type ExecCommandRunner struct {
	logger orchestrator.Logger
}

func NewExecCommandRunner(logger orchestrator.Logger) ExecCommandRunner {
	return ExecCommandRunner{logger: logger}
}

// Run starts the command and waits for it. The process is killed when ctx
// is done. Arguments are never logged as they may carry credentials.
func (r ExecCommandRunner) Run(ctx context.Context, command Command) error {
	name := filepath.Base(command.Path)

	cmd := exec.CommandContext(ctx, command.Path, command.Args...)
	cmd.Env = append(os.Environ(), command.Env...)
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr

	r.logger.Debug("dbb", "Running %s", command.Path)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.Wrapf(ctx.Err(), "%s was interrupted", name)
		}
		if message := strings.TrimSpace(stderr.String()); message != "" {
			return errors.Wrapf(err, "%s failed: %s", name, message)
		}
		return errors.Wrapf(err, "%s failed", name)
	}
	r.logger.Debug("dbb", "%s finished", name)
	return nil
}

func commandPath(connection Connection, binary string) string {
	if connection.DumpCommandPath == "" {
		return binary
	}
	return filepath.Join(connection.DumpCommandPath, binary)
}
