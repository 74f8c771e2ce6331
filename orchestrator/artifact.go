package orchestrator

import "time"

// Artifact is the single local file a run produces.
type Artifact struct {
	LocalPath   string
	LogicalName string
	Size        int64
	Compressed  bool
	Checksum    string
}

//counterfeiter:generate -o fakes/fake_artifact_manager.go . ArtifactManager
type ArtifactManager interface {
	EnsureDumpsRoot(dumpsRoot string) error
	Name(requestedFilename, defaultExtension, dumpsRoot string, now time.Time) (localPath, logicalName string)
	Inspect(localPath string) (size int64, checksum string, err error)
	Remove(localPath string) error
}
