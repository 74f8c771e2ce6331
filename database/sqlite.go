package database

import (
	"context"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

// SQLiteDumper copies the database file.
type SQLiteDumper struct {
	connection Connection
	fileSystem boshsys.FileSystem
}

func NewSQLiteDumper(connection Connection, fileSystem boshsys.FileSystem) SQLiteDumper {
	return SQLiteDumper{connection: connection, fileSystem: fileSystem}
}

func (d SQLiteDumper) FileExtension() string {
	return "sqlite"
}

func (d SQLiteDumper) Dump(ctx context.Context, destinationPath string) error {
	databaseFile, err := d.fileSystem.ExpandPath(d.connection.Database)
	if err != nil {
		return errors.Wrapf(err, "invalid sqlite database path %s", d.connection.Database)
	}
	if !d.fileSystem.FileExists(databaseFile) {
		return errors.Errorf("sqlite database %s does not exist", databaseFile)
	}

	return dumpAtomically(ctx, d.fileSystem, destinationPath, func(partialPath string) error {
		if err := d.fileSystem.CopyFile(databaseFile, partialPath); err != nil {
			return errors.Wrapf(err, "failed copying %s", databaseFile)
		}
		return nil
	})
}
