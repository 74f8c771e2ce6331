package artifact

import (
	"os"
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

type LocalArtifactManager struct {
	namer      Namer
	fileSystem boshsys.FileSystem
}

func NewLocalArtifactManager(namer Namer, fileSystem boshsys.FileSystem) LocalArtifactManager {
	return LocalArtifactManager{namer: namer, fileSystem: fileSystem}
}

func (m LocalArtifactManager) EnsureDumpsRoot(dumpsRoot string) error {
	if err := m.fileSystem.MkdirAll(m.namer.DumpsRoot(dumpsRoot), 0755); err != nil {
		return errors.Wrap(err, "failed creating dumps directory")
	}
	return nil
}

func (m LocalArtifactManager) Name(requestedFilename, defaultExtension, dumpsRoot string, now time.Time) (string, string) {
	return m.namer.Name(requestedFilename, defaultExtension, dumpsRoot, now)
}

// Inspect returns the size and sha256 of the file at localPath.
func (m LocalArtifactManager) Inspect(localPath string) (int64, string, error) {
	info, err := m.fileSystem.Stat(localPath)
	if err != nil {
		return 0, "", errors.Wrapf(err, "failed reading %s", localPath)
	}
	if info.IsDir() {
		return 0, "", errors.Errorf("%s is a directory", localPath)
	}

	file, err := m.fileSystem.OpenFile(localPath, os.O_RDONLY, 0)
	if err != nil {
		return 0, "", errors.Wrapf(err, "failed opening %s", localPath)
	}
	defer file.Close()

	checksum, err := CalculateChecksum(file)
	if err != nil {
		return 0, "", errors.Wrapf(err, "failed calculating checksum of %s", localPath)
	}

	return info.Size(), checksum, nil
}

func (m LocalArtifactManager) Remove(localPath string) error {
	if !m.fileSystem.FileExists(localPath) {
		return errors.Errorf("%s does not exist", localPath)
	}
	if err := m.fileSystem.RemoveAll(localPath); err != nil {
		return errors.Wrapf(err, "failed removing %s", localPath)
	}
	return nil
}
