package database

import (
	"context"
	"path/filepath"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

// dumpAtomically runs dump against a hidden sibling of destinationPath and
// moves it into place only when dump succeeds. Nothing is left at either
// path on failure.
func dumpAtomically(ctx context.Context, fileSystem boshsys.FileSystem, destinationPath string, dump func(partialPath string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	directory := filepath.Dir(destinationPath)
	if err := fileSystem.MkdirAll(directory, 0755); err != nil {
		return errors.Wrapf(err, "failed creating directory %s", directory)
	}

	partialPath := filepath.Join(directory, "."+filepath.Base(destinationPath)+".partial")
	if err := fileSystem.RemoveAll(partialPath); err != nil {
		return errors.Wrapf(err, "failed removing stale %s", partialPath)
	}

	if err := dump(partialPath); err != nil {
		fileSystem.RemoveAll(partialPath)
		return err
	}

	if !fileSystem.FileExists(partialPath) {
		return errors.Errorf("dump finished without writing %s", partialPath)
	}

	if err := fileSystem.Rename(partialPath, destinationPath); err != nil {
		fileSystem.RemoveAll(partialPath)
		return errors.Wrapf(err, "failed moving dump to %s", destinationPath)
	}
	return nil
}
