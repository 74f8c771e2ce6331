package orchestrator

type RetentionStep struct {
	logger          Logger
	artifactManager ArtifactManager
}

func NewRetentionStep(logger Logger, artifactManager ArtifactManager) Step {
	return &RetentionStep{logger: logger, artifactManager: artifactManager}
}

// Run removes the local artifact only when remote copies are all that
// should be kept and at least one of them exists.
func (s *RetentionStep) Run(session *Session) error {
	if session.Request().Retention != KeepOnlyRemote {
		return nil
	}

	artifact := session.CurrentArtifact()
	if !anySucceeded(session.UploadResults()) {
		s.logger.Warn(logTag, "No upload succeeded, keeping local dump %s", artifact.LocalPath)
		return nil
	}

	if err := s.artifactManager.Remove(artifact.LocalPath); err != nil {
		cleanupErr := NewCleanupError(err)
		session.RecordCleanup(false, cleanupErr)
		return cleanupErr
	}

	session.RecordCleanup(true, nil)
	s.logger.Info(logTag, "Removed local dump %s as it is now stored remotely.", artifact.LocalPath)
	return nil
}

func anySucceeded(results []UploadResult) bool {
	for _, result := range results {
		if result.Succeeded() {
			return true
		}
	}
	return false
}
