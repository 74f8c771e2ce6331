package orchestrator

import (
	"context"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/executor"
)

func NewBackuper(
	logger Logger,
	artifactManager ArtifactManager,
	compressor Compressor,
	uploader Uploader,
	executor executor.Executor,
	rateLimiter RateLimiter,
	nowFunc func() time.Time,
) *Backuper {
	nameArtifact := NewNameArtifactStep(logger, artifactManager, nowFunc)
	dump := NewDumpStep(logger, artifactManager)
	compress := NewCompressStep(logger, compressor, artifactManager)
	upload := NewUploadStep(logger, uploader, executor, rateLimiter)
	retention := NewRetentionStep(logger, artifactManager)
	addFinishTime := NewAddFinishTimeStep(logger, nowFunc)

	workflow := NewWorkflow()
	workflow.StartWith(nameArtifact).OnSuccess(dump).OnFailure(addFinishTime)
	workflow.Add(dump).OnSuccess(compress).OnFailure(addFinishTime)
	workflow.Add(compress).OnSuccess(upload).OnFailure(addFinishTime)
	workflow.Add(upload).OnSuccessOrFailure(retention)
	workflow.Add(retention).OnSuccessOrFailure(addFinishTime)
	workflow.Add(addFinishTime)

	return &Backuper{
		logger:   logger,
		workflow: workflow,
	}
}

type Backuper struct {
	logger   Logger
	workflow *Workflow
}

// Backup names, dumps, optionally compresses and uploads one artifact, then
// applies the retention policy. ctx bounds every external call.
func (b Backuper) Backup(ctx context.Context, request BackupRequest) RunResult {
	session := NewSession(ctx, request)

	errs := b.workflow.Run(session)

	result := session.Result(errs)
	b.logger.Debug(logTag, "Backup finished with outcome %s", result.Outcome())
	return result
}
