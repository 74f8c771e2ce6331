package orchestrator

import (
	"context"
	"time"
)

type Session struct {
	ctx     context.Context
	request BackupRequest

	artifact             *Artifact
	dumpErr              error
	compressionErr       error
	uploadResults        []UploadResult
	cleanupErr           error
	localArtifactRemoved bool
	startedAt            time.Time
	finishedAt           time.Time
}

func NewSession(ctx context.Context, request BackupRequest) *Session {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Session{ctx: ctx, request: request}
}

func (session *Session) Context() context.Context {
	return session.ctx
}

func (session *Session) Request() BackupRequest {
	return session.request
}

func (session *Session) CurrentArtifact() *Artifact {
	return session.artifact
}

func (session *Session) SetCurrentArtifact(artifact *Artifact) {
	session.artifact = artifact
}

func (session *Session) SetStartTime(startedAt time.Time) {
	session.startedAt = startedAt
}

func (session *Session) SetFinishTime(finishedAt time.Time) {
	session.finishedAt = finishedAt
}

func (session *Session) RecordDumpError(err error) {
	session.dumpErr = err
}

func (session *Session) RecordCompressionError(err error) {
	session.compressionErr = err
}

func (session *Session) RecordUploadResults(results []UploadResult) {
	session.uploadResults = results
}

func (session *Session) UploadResults() []UploadResult {
	return session.uploadResults
}

func (session *Session) RecordCleanup(removed bool, err error) {
	session.localArtifactRemoved = removed
	session.cleanupErr = err
}

func (session *Session) Result(errs Error) RunResult {
	result := RunResult{
		DumpErr:              session.dumpErr,
		CompressionErr:       session.compressionErr,
		UploadResults:        session.uploadResults,
		CleanupErr:           session.cleanupErr,
		LocalArtifactRemoved: session.localArtifactRemoved,
		StartedAt:            session.startedAt,
		FinishedAt:           session.finishedAt,
		errs:                 errs,
	}
	if session.artifact != nil {
		result.Artifact = *session.artifact
	}
	return result
}
