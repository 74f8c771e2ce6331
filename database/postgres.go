package database

import (
	"context"
	"strconv"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// PostgresDumper writes pg_dump custom-format archives.
type PostgresDumper struct {
	connection Connection
	runner     CommandRunner
	fileSystem boshsys.FileSystem
}

func NewPostgresDumper(connection Connection, runner CommandRunner, fileSystem boshsys.FileSystem) PostgresDumper {
	return PostgresDumper{connection: connection, runner: runner, fileSystem: fileSystem}
}

func (d PostgresDumper) FileExtension() string {
	return "dump"
}

func (d PostgresDumper) Dump(ctx context.Context, destinationPath string) error {
	return dumpAtomically(ctx, d.fileSystem, destinationPath, func(partialPath string) error {
		args := []string{"-Fc", "--no-acl", "--no-owner"}
		if d.connection.Host != "" {
			args = append(args, "-h", d.connection.Host)
		}
		if d.connection.Port != 0 {
			args = append(args, "-p", strconv.Itoa(d.connection.Port))
		}
		if d.connection.Username != "" {
			args = append(args, "-U", d.connection.Username)
		}
		args = append(args, "-f", partialPath, d.connection.Database)

		var env []string
		if d.connection.Password != "" {
			env = append(env, "PGPASSWORD="+d.connection.Password)
		}

		return d.runner.Run(ctx, Command{
			Path: commandPath(d.connection, "pg_dump"),
			Args: args,
			Env:  env,
		})
	})
}
