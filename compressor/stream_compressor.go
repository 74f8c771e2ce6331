package compressor

import (
	"context"
	"io"
	"os"

	"github.com/cloudfoundry/database-backup-and-archive/counter"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/cloudfoundry/database-backup-and-archive/readwriter"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const (
	Gzip        = "gzip"
	Zstd        = "zstd"
	GzipCommand = "gzip-command"
)

type encoderFactory func(io.Writer) (io.WriteCloser, error)

// StreamCompressor compresses in process. The compressed file is written
// under a temporary name and the original is removed once it is in place.
type StreamCompressor struct {
	name       string
	suffix     string
	newEncoder encoderFactory
	fileSystem boshsys.FileSystem
	logger     orchestrator.Logger
}

func NewGzipCompressor(fileSystem boshsys.FileSystem, logger orchestrator.Logger) StreamCompressor {
	return StreamCompressor{
		name:   Gzip,
		suffix: ".gz",
		newEncoder: func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, gzip.BestCompression)
		},
		fileSystem: fileSystem,
		logger:     logger,
	}
}

func NewZstdCompressor(fileSystem boshsys.FileSystem, logger orchestrator.Logger) StreamCompressor {
	return StreamCompressor{
		name:   Zstd,
		suffix: ".zst",
		newEncoder: func(w io.Writer) (io.WriteCloser, error) {
			return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		},
		fileSystem: fileSystem,
		logger:     logger,
	}
}

func (c StreamCompressor) Suffix() string {
	return c.suffix
}

func (c StreamCompressor) Compress(ctx context.Context, path string) error {
	targetPath := path + c.suffix
	partialPath := targetPath + ".partial"

	info, err := c.fileSystem.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed reading %s", path)
	}

	compressedSize, err := c.compressTo(ctx, path, partialPath, info.Size())
	if err != nil {
		c.fileSystem.RemoveAll(partialPath)
		return err
	}

	if err := c.fileSystem.Rename(partialPath, targetPath); err != nil {
		c.fileSystem.RemoveAll(partialPath)
		return errors.Wrapf(err, "failed moving compressed file to %s", targetPath)
	}

	if err := c.fileSystem.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "failed removing uncompressed %s", path)
	}

	c.logger.Debug("dbb", "%s compressed %d bytes to %d bytes", c.name, info.Size(), compressedSize)
	return nil
}

func (c StreamCompressor) compressTo(ctx context.Context, sourcePath, partialPath string, sourceSize int64) (int64, error) {
	source, err := c.fileSystem.OpenFile(sourcePath, os.O_RDONLY, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "failed opening %s", sourcePath)
	}
	defer source.Close()

	destination, err := c.fileSystem.OpenFile(partialPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return 0, errors.Wrapf(err, "failed creating %s", partialPath)
	}
	defer destination.Close()

	compressedBytes := counter.NewCountWriter(destination)
	encoder, err := c.newEncoder(compressedBytes)
	if err != nil {
		return 0, errors.Wrapf(err, "failed creating %s encoder", c.name)
	}

	reader := readwriter.NewLogPercentageReader(
		readwriter.NewContextReader(ctx, source),
		c.logger, sourceSize, "dbb", "Compressing... %d%%",
	)
	if _, err := io.Copy(encoder, reader); err != nil {
		encoder.Close()
		return 0, errors.Wrapf(err, "failed compressing %s", sourcePath)
	}

	if err := encoder.Close(); err != nil {
		return 0, errors.Wrapf(err, "failed finishing %s stream", c.name)
	}

	if err := destination.Close(); err != nil {
		return 0, errors.Wrapf(err, "failed writing %s", partialPath)
	}

	return compressedBytes.Count(), nil
}
