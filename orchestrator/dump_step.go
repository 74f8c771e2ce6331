package orchestrator

import "github.com/pkg/errors"

type DumpStep struct {
	logger          Logger
	artifactManager ArtifactManager
}

func NewDumpStep(logger Logger, artifactManager ArtifactManager) Step {
	return &DumpStep{logger: logger, artifactManager: artifactManager}
}

func (s *DumpStep) Run(session *Session) error {
	artifact := session.CurrentArtifact()

	s.logger.Info(logTag, "Dumping database to %s...", artifact.LocalPath)
	if err := session.Request().Database.Dump(session.Context(), artifact.LocalPath); err != nil {
		dumpErr := NewDumpError(err)
		session.RecordDumpError(dumpErr)
		return dumpErr
	}

	size, checksum, err := s.artifactManager.Inspect(artifact.LocalPath)
	if err != nil {
		dumpErr := NewDumpError(errors.Wrapf(err, "dump reported success but %s is unreadable", artifact.LocalPath))
		session.RecordDumpError(dumpErr)
		return dumpErr
	}
	artifact.Size = size
	artifact.Checksum = checksum

	s.logger.Info(logTag, "Finished dumping database (%d bytes).", size)
	return nil
}
