package disk

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudfoundry/database-backup-and-archive/artifact"
	"github.com/cloudfoundry/database-backup-and-archive/readwriter"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

// LocalDisk is a directory on this machine, typically a mounted volume.
type LocalDisk struct {
	name       string
	root       string
	fileSystem boshsys.FileSystem
	logger     readwriter.Logger
}

func NewLocalDisk(name, root string, fileSystem boshsys.FileSystem, logger readwriter.Logger) LocalDisk {
	return LocalDisk{name: name, root: root, fileSystem: fileSystem, logger: logger}
}

func (d LocalDisk) DirectoryExists(ctx context.Context, folder string) (bool, error) {
	if err := checkFolder(d.name, folder); err != nil {
		return false, err
	}

	directory := filepath.Join(d.root, folder)
	if !d.fileSystem.FileExists(directory) {
		return false, nil
	}

	info, err := d.fileSystem.Stat(directory)
	if err != nil {
		return false, errors.Wrapf(err, "failed reading %s on disk %s", folder, d.name)
	}
	return info.IsDir(), nil
}

// PutFile copies sourcePath into folder under a temporary name, checks the
// copy against the source checksum and then moves it to targetName.
func (d LocalDisk) PutFile(ctx context.Context, folder, sourcePath, targetName string) error {
	if err := checkFolder(d.name, folder); err != nil {
		return err
	}
	if err := checkTargetName(d.name, targetName); err != nil {
		return err
	}

	targetPath := filepath.Join(d.root, folder, targetName)
	partialPath := filepath.Join(d.root, folder, "."+targetName+".part")

	sourceChecksum, err := d.copy(ctx, sourcePath, partialPath)
	if err != nil {
		d.fileSystem.RemoveAll(partialPath)
		return err
	}

	copyChecksum, err := d.checksum(partialPath)
	if err != nil {
		d.fileSystem.RemoveAll(partialPath)
		return err
	}
	if copyChecksum != sourceChecksum {
		d.fileSystem.RemoveAll(partialPath)
		return errors.Errorf("checksum of %s on disk %s does not match: expected %s, got %s", targetName, d.name, sourceChecksum, copyChecksum)
	}

	if err := d.fileSystem.Rename(partialPath, targetPath); err != nil {
		d.fileSystem.RemoveAll(partialPath)
		return errors.Wrapf(err, "failed moving %s into place on disk %s", targetName, d.name)
	}
	return nil
}

func (d LocalDisk) copy(ctx context.Context, sourcePath, partialPath string) (string, error) {
	info, err := d.fileSystem.Stat(sourcePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed reading %s", sourcePath)
	}

	source, err := d.fileSystem.OpenFile(sourcePath, os.O_RDONLY, 0)
	if err != nil {
		return "", errors.Wrapf(err, "failed opening %s", sourcePath)
	}
	defer source.Close()

	destination, err := d.fileSystem.OpenFile(partialPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return "", errors.Wrapf(err, "failed creating %s on disk %s", partialPath, d.name)
	}
	defer destination.Close()

	shasum := sha256.New()
	writer := readwriter.NewLogPercentageWriter(
		io.MultiWriter(destination, shasum),
		d.logger, info.Size(), "dbb", "Copying to disk "+d.name+"... %d%%",
	)
	if _, err := io.Copy(writer, readwriter.NewContextReader(ctx, source)); err != nil {
		return "", errors.Wrapf(err, "failed copying %s to disk %s", sourcePath, d.name)
	}

	if err := destination.Close(); err != nil {
		return "", errors.Wrapf(err, "failed writing %s on disk %s", partialPath, d.name)
	}

	return fmt.Sprintf("%x", shasum.Sum(nil)), nil
}

func (d LocalDisk) checksum(path string) (string, error) {
	file, err := d.fileSystem.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return "", errors.Wrapf(err, "failed reading back %s", path)
	}
	defer file.Close()

	return artifact.CalculateChecksum(file)
}
