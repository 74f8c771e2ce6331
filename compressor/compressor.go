package compressor

import (
	"github.com/cloudfoundry/database-backup-and-archive/database"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

func New(name string, runner database.CommandRunner, fileSystem boshsys.FileSystem, logger orchestrator.Logger) (orchestrator.Compressor, error) {
	switch name {
	case Gzip, "":
		return NewGzipCompressor(fileSystem, logger), nil
	case Zstd:
		return NewZstdCompressor(fileSystem, logger), nil
	case GzipCommand:
		return NewCommandCompressor(runner, fileSystem), nil
	default:
		return nil, errors.Errorf("unknown compressor %q", name)
	}
}

func IsSupported(name string) bool {
	switch name {
	case Gzip, Zstd, GzipCommand:
		return true
	}
	return false
}
