package orchestrator

import "github.com/cloudfoundry/database-backup-and-archive/executor"

type UploadStep struct {
	logger      Logger
	uploader    Uploader
	executor    executor.Executor
	rateLimiter RateLimiter
}

func NewUploadStep(logger Logger, uploader Uploader, executor executor.Executor, rateLimiter RateLimiter) Step {
	return &UploadStep{
		logger:      logger,
		uploader:    uploader,
		executor:    executor,
		rateLimiter: rateLimiter,
	}
}

// Run attempts every destination, even after failures, and records one
// result per destination in request order.
func (s *UploadStep) Run(session *Session) error {
	destinations := session.Request().Destinations
	if len(destinations) == 0 {
		s.logger.Debug(logTag, "No upload destinations requested")
		return nil
	}

	artifact := *session.CurrentArtifact()

	var executables []executor.Executable
	for _, destination := range destinations {
		executables = append(executables, NewUploadExecutable(session.Context(), s.uploader, s.rateLimiter, destination, artifact, s.logger))
	}

	errs := s.executor.Run(executables)

	var uploadErrs []error
	results := make([]UploadResult, len(destinations))
	for index, destination := range destinations {
		results[index] = UploadResult{Destination: destination, Err: errs[index]}
		if errs[index] != nil {
			uploadErrs = append(uploadErrs, NewUploadError(destination, errs[index]))
		}
	}
	session.RecordUploadResults(results)

	return NewError(uploadErrs...)
}
