package orchestrator

import "github.com/pkg/errors"

type CompressStep struct {
	logger          Logger
	compressor      Compressor
	artifactManager ArtifactManager
	skip            *SkipStep
}

func NewCompressStep(logger Logger, compressor Compressor, artifactManager ArtifactManager) Step {
	return &CompressStep{
		logger:          logger,
		compressor:      compressor,
		artifactManager: artifactManager,
		skip:            NewSkipStep(logger, "compression"),
	}
}

func (s *CompressStep) Run(session *Session) error {
	if !session.Request().Compress {
		return s.skip.Run(session)
	}

	artifact := session.CurrentArtifact()
	if s.compressor == nil {
		err := NewCompressionError(errors.New("compression was requested but no compressor is configured"))
		session.RecordCompressionError(err)
		return err
	}

	s.logger.Info(logTag, "Compressing %s...", artifact.LocalPath)
	if err := s.compressor.Compress(session.Context(), artifact.LocalPath); err != nil {
		compressionErr := NewCompressionError(err)
		session.RecordCompressionError(compressionErr)
		return compressionErr
	}

	suffix := s.compressor.Suffix()
	artifact.LocalPath += suffix
	artifact.LogicalName += suffix
	artifact.Compressed = true

	size, checksum, err := s.artifactManager.Inspect(artifact.LocalPath)
	if err != nil {
		compressionErr := NewCompressionError(errors.Wrapf(err, "compressed artifact %s is unreadable", artifact.LocalPath))
		session.RecordCompressionError(compressionErr)
		return compressionErr
	}
	artifact.Size = size
	artifact.Checksum = checksum

	s.logger.Info(logTag, "Finished compressing to %s (%d bytes).", artifact.LogicalName, size)
	return nil
}
