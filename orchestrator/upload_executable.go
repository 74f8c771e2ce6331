package orchestrator

import "context"

type UploadExecutable struct {
	ctx         context.Context
	uploader    Uploader
	rateLimiter RateLimiter
	destination Destination
	artifact    Artifact
	Logger
}

func NewUploadExecutable(ctx context.Context, uploader Uploader, rateLimiter RateLimiter, destination Destination, artifact Artifact, logger Logger) UploadExecutable {
	return UploadExecutable{
		ctx:         ctx,
		uploader:    uploader,
		rateLimiter: rateLimiter,
		destination: destination,
		artifact:    artifact,
		Logger:      logger,
	}
}

func (e UploadExecutable) Execute() error {
	if e.rateLimiter != nil {
		if err := e.rateLimiter.RateLimit(e.ctx); err != nil {
			return err
		}
	}

	e.Logger.Info(logTag, "Uploading %s to %s...", e.artifact.LogicalName, e.destination)
	if err := e.uploader.Upload(e.ctx, e.destination, e.artifact); err != nil {
		e.Logger.Error(logTag, "Upload of %s to %s failed: %s", e.artifact.LogicalName, e.destination, err)
		return err
	}
	e.Logger.Info(logTag, "Finished uploading %s to %s.", e.artifact.LogicalName, e.destination)
	return nil
}
