package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampFormat = "20060102150405"

// Namer resolves where a dump is written and what it is called remotely.
// The working directory is captured once, when the Namer is built.
type Namer struct {
	workingDirectory string
}

func NewNamer(workingDirectory string) Namer {
	return Namer{workingDirectory: workingDirectory}
}

func NewNamerFromWorkingDirectory() (Namer, error) {
	workingDirectory, err := os.Getwd()
	if err != nil {
		return Namer{}, err
	}
	return NewNamer(workingDirectory), nil
}

func (n Namer) Name(requestedFilename, defaultExtension, dumpsRoot string, now time.Time) (string, string) {
	if requestedFilename == "" {
		logicalName := now.Format(timestampFormat) + "." + defaultExtension
		return filepath.Join(n.DumpsRoot(dumpsRoot), logicalName), logicalName
	}

	if strings.HasPrefix(requestedFilename, string(os.PathSeparator)) {
		return requestedFilename, filepath.Base(requestedFilename)
	}

	return filepath.Join(n.workingDirectory, requestedFilename), filepath.Base(requestedFilename)
}

// DumpsRoot makes dumpsRoot absolute against the working directory.
func (n Namer) DumpsRoot(dumpsRoot string) string {
	trimmed := strings.TrimRight(dumpsRoot, string(os.PathSeparator))
	if trimmed == "" && dumpsRoot != "" {
		return string(os.PathSeparator)
	}
	if filepath.IsAbs(trimmed) {
		return trimmed
	}
	return filepath.Join(n.workingDirectory, trimmed)
}
