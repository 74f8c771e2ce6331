package database

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type MongoDBDumper struct {
	connection Connection
	runner     CommandRunner
	fileSystem boshsys.FileSystem
}

func NewMongoDBDumper(connection Connection, runner CommandRunner, fileSystem boshsys.FileSystem) MongoDBDumper {
	return MongoDBDumper{connection: connection, runner: runner, fileSystem: fileSystem}
}

func (d MongoDBDumper) FileExtension() string {
	return "dump"
}

type mongoDumpConfig struct {
	Password string `yaml:"password"`
}

func (d MongoDBDumper) Dump(ctx context.Context, destinationPath string) error {
	return dumpAtomically(ctx, d.fileSystem, destinationPath, func(partialPath string) error {
		args := []string{"--archive=" + partialPath}
		if d.connection.Host != "" {
			args = append(args, "--host="+d.connection.Host)
		}
		if d.connection.Port != 0 {
			args = append(args, "--port="+strconv.Itoa(d.connection.Port))
		}
		if d.connection.Username != "" {
			configPath, err := d.writePasswordConfig(partialPath)
			if err != nil {
				return err
			}
			defer d.fileSystem.RemoveAll(configPath)

			args = append(args, "--username="+d.connection.Username, "--config="+configPath)
		}
		args = append(args, "--db="+d.connection.Database)

		return d.runner.Run(ctx, Command{
			Path: commandPath(d.connection, "mongodump"),
			Args: args,
		})
	})
}

// writePasswordConfig keeps the password off the mongodump command line,
// where other users of the host could read it.
func (d MongoDBDumper) writePasswordConfig(partialPath string) (string, error) {
	configPath := filepath.Join(filepath.Dir(partialPath), filepath.Base(partialPath)+".mongodump.yml")

	contents, err := yaml.Marshal(mongoDumpConfig{Password: d.connection.Password})
	if err != nil {
		return "", errors.Wrap(err, "failed encoding mongodump config")
	}

	file, err := d.fileSystem.OpenFile(configPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return "", errors.Wrapf(err, "failed creating %s", configPath)
	}
	if _, err := file.Write(contents); err != nil {
		file.Close()
		d.fileSystem.RemoveAll(configPath)
		return "", errors.Wrapf(err, "failed writing %s", configPath)
	}
	if err := file.Close(); err != nil {
		d.fileSystem.RemoveAll(configPath)
		return "", errors.Wrapf(err, "failed writing %s", configPath)
	}
	return configPath, nil
}
