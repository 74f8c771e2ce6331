package database

import (
	"context"
	"strconv"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type MySQLDumper struct {
	connection Connection
	runner     CommandRunner
	fileSystem boshsys.FileSystem
}

func NewMySQLDumper(connection Connection, runner CommandRunner, fileSystem boshsys.FileSystem) MySQLDumper {
	return MySQLDumper{connection: connection, runner: runner, fileSystem: fileSystem}
}

func (d MySQLDumper) FileExtension() string {
	return "sql"
}

func (d MySQLDumper) Dump(ctx context.Context, destinationPath string) error {
	return dumpAtomically(ctx, d.fileSystem, destinationPath, func(partialPath string) error {
		args := []string{"--routines", "--result-file=" + partialPath}
		if d.connection.Host != "" {
			args = append(args, "--host="+d.connection.Host)
		}
		if d.connection.Port != 0 {
			args = append(args, "--port="+strconv.Itoa(d.connection.Port))
		}
		if d.connection.Username != "" {
			args = append(args, "--user="+d.connection.Username)
		}
		args = append(args, d.connection.Database)

		var env []string
		if d.connection.Password != "" {
			env = append(env, "MYSQL_PWD="+d.connection.Password)
		}

		return d.runner.Run(ctx, Command{
			Path: commandPath(d.connection, "mysqldump"),
			Args: args,
			Env:  env,
		})
	})
}
