package compressor

import (
	"context"

	"github.com/cloudfoundry/database-backup-and-archive/database"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

// CommandCompressor runs the gzip binary, which replaces the file itself.
type CommandCompressor struct {
	runner     database.CommandRunner
	fileSystem boshsys.FileSystem
	gzipPath   string
}

func NewCommandCompressor(runner database.CommandRunner, fileSystem boshsys.FileSystem) CommandCompressor {
	return CommandCompressor{runner: runner, fileSystem: fileSystem, gzipPath: "gzip"}
}

func (c CommandCompressor) Suffix() string {
	return ".gz"
}

func (c CommandCompressor) Compress(ctx context.Context, path string) error {
	err := c.runner.Run(ctx, database.Command{
		Path: c.gzipPath,
		Args: []string{"-9", "-f", path},
	})
	if err != nil {
		return err
	}

	if !c.fileSystem.FileExists(path + c.Suffix()) {
		return errors.Errorf("gzip did not produce %s", path+c.Suffix())
	}
	return nil
}
