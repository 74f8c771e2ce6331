package readwriter

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

type LogPercentage struct {
	logger              Logger
	totalSize           int64
	tag                 string
	message             string
	lastLogPercentage   int64
	percentageIncrement int64
}

type LogPercentageWriter struct {
	Writer       io.Writer
	bytesWritten int64
	LogPercentage
}

// LogPercentageReader logs progress while an upload reads its source. It
// is an io.Seeker when the underlying reader is, so SDKs can rewind it.
type LogPercentageReader struct {
	Reader    io.Reader
	bytesRead int64
	LogPercentage
}

//counterfeiter:generate -o fakes/fake_logger.go . Logger
type Logger interface {
	Info(tag, msg string, args ...interface{})
}

func NewLogPercentageWriter(writer io.Writer, logger Logger, totalSize int64, tag, message string) *LogPercentageWriter {
	return &LogPercentageWriter{
		Writer:        writer,
		LogPercentage: newLogPercentage(logger, totalSize, tag, message),
	}
}

func (lw *LogPercentageWriter) Write(b []byte) (int, error) {
	n, err := lw.Writer.Write(b)
	if err != nil {
		return 0, err
	}
	lw.bytesWritten += int64(n)
	lw.logPercentage(lw.bytesWritten)
	return n, nil
}

func NewLogPercentageReader(reader io.Reader, logger Logger, totalSize int64, tag, message string) *LogPercentageReader {
	return &LogPercentageReader{
		Reader:        reader,
		LogPercentage: newLogPercentage(logger, totalSize, tag, message),
	}
}

func (lr *LogPercentageReader) Read(b []byte) (int, error) {
	n, err := lr.Reader.Read(b)
	if n > 0 {
		lr.bytesRead += int64(n)
		lr.logPercentage(lr.bytesRead)
	}
	return n, err
}

func (lr *LogPercentageReader) Seek(offset int64, whence int) (int64, error) {
	seeker, ok := lr.Reader.(io.Seeker)
	if !ok {
		return 0, errors.New("underlying reader does not support seeking")
	}
	position, err := seeker.Seek(offset, whence)
	if err != nil {
		return position, err
	}
	lr.bytesRead = position
	if position == 0 {
		lr.lastLogPercentage = 0
	}
	return position, nil
}

func newLogPercentage(logger Logger, totalSize int64, tag, message string) LogPercentage {
	return LogPercentage{
		logger:              logger,
		totalSize:           totalSize,
		tag:                 tag,
		message:             message,
		percentageIncrement: 5,
	}
}

func (l *LogPercentage) logPercentage(transferred int64) {
	if l.totalSize <= 0 {
		return
	}
	percentageSoFar := (100 * transferred) / l.totalSize
	if transferred > l.totalSize {
		l.logger.Info(l.tag, l.message, 100)
	} else if percentageSoFar >= l.lastLogPercentage+l.percentageIncrement {
		l.lastLogPercentage = percentageSoFar
		l.logger.Info(l.tag, l.message, int(percentageSoFar))
	}
}

type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

// NewContextReader stops returning data once ctx is done.
func NewContextReader(ctx context.Context, reader io.Reader) io.Reader {
	return &contextReader{ctx: ctx, reader: reader}
}

func (r *contextReader) Read(b []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.reader.Read(b)
}
