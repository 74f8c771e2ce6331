package factory

import (
	"io"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

func BuildLogger(debug bool) boshlog.Logger {
	return BuildBoshLoggerWithCustomWriter(os.Stdout, debug)
}

func BuildBoshLoggerWithCustomWriter(w io.Writer, debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, w)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, w)
}
