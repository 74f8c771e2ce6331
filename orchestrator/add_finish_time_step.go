package orchestrator

import "time"

// AddFinishTimeStep is the last node of every path through the backup
// workflow, including the failure paths.
type AddFinishTimeStep struct {
	logger  Logger
	nowFunc func() time.Time
}

func NewAddFinishTimeStep(logger Logger, nowFunc func() time.Time) Step {
	return &AddFinishTimeStep{logger: logger, nowFunc: nowFunc}
}

func (s *AddFinishTimeStep) Run(session *Session) error {
	finishedAt := s.nowFunc()
	session.SetFinishTime(finishedAt)
	s.logger.Debug(logTag, "Backup run took %s", finishedAt.Sub(session.startedAt))
	return nil
}
