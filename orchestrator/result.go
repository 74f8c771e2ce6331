package orchestrator

import "time"

type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeDumpFailed        Outcome = "dump-failed"
	OutcomeCompressionFailed Outcome = "compression-failed"
)

type UploadResult struct {
	Destination Destination
	Err         error
}

func (r UploadResult) Succeeded() bool {
	return r.Err == nil
}

// RunResult is the outcome of one backup run. Only the dump and
// compression steps decide Success; uploads and cleanup are advisory.
type RunResult struct {
	Artifact             Artifact
	DumpErr              error
	CompressionErr       error
	UploadResults        []UploadResult
	CleanupErr           error
	LocalArtifactRemoved bool
	StartedAt            time.Time
	FinishedAt           time.Time

	errs Error
}

func (r RunResult) Outcome() Outcome {
	switch {
	case r.DumpErr != nil:
		return OutcomeDumpFailed
	case r.CompressionErr != nil:
		return OutcomeCompressionFailed
	default:
		return OutcomeSuccess
	}
}

func (r RunResult) Success() bool {
	return r.Outcome() == OutcomeSuccess
}

func (r RunResult) SuccessfulUploads() int {
	count := 0
	for _, upload := range r.UploadResults {
		if upload.Succeeded() {
			count++
		}
	}
	return count
}

// Errors returns every error raised during the run, in the order the
// steps reported them.
func (r RunResult) Errors() Error {
	return r.errs
}
