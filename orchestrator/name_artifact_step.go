package orchestrator

import (
	"time"

	"github.com/pkg/errors"
)

type NameArtifactStep struct {
	logger          Logger
	artifactManager ArtifactManager
	nowFunc         func() time.Time
}

func NewNameArtifactStep(logger Logger, artifactManager ArtifactManager, nowFunc func() time.Time) Step {
	return &NameArtifactStep{logger: logger, artifactManager: artifactManager, nowFunc: nowFunc}
}

func (s *NameArtifactStep) Run(session *Session) error {
	request := session.Request()
	now := s.nowFunc()
	session.SetStartTime(now)

	if request.Database == nil {
		err := NewDumpError(errors.New("no database connection was resolved"))
		session.RecordDumpError(err)
		return err
	}

	if err := s.artifactManager.EnsureDumpsRoot(request.DumpsRoot); err != nil {
		dumpErr := NewDumpError(errors.Wrapf(err, "could not create dumps folder %s", request.DumpsRoot))
		session.RecordDumpError(dumpErr)
		return dumpErr
	}

	localPath, logicalName := s.artifactManager.Name(
		request.RequestedFilename,
		request.Database.FileExtension(),
		request.DumpsRoot,
		now,
	)
	s.logger.Debug(logTag, "Artifact %s will be written to %s", logicalName, localPath)

	session.SetCurrentArtifact(&Artifact{LocalPath: localPath, LogicalName: logicalName})
	return nil
}
