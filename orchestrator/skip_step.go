package orchestrator

// SkipStep stands in for an optional stage the request did not ask for.
type SkipStep struct {
	logger Logger
	stage  string
}

func NewSkipStep(logger Logger, stage string) *SkipStep {
	return &SkipStep{logger: logger, stage: stage}
}

func (s *SkipStep) Run(session *Session) error {
	if artifact := session.CurrentArtifact(); artifact != nil {
		s.logger.Info(logTag, "Skipping %s of %s", s.stage, artifact.LogicalName)
		return nil
	}
	s.logger.Info(logTag, "Skipping %s", s.stage)
	return nil
}
