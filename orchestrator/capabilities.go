package orchestrator

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Dumper writes a complete dump of its database to destinationPath, or
// leaves nothing behind.
//
//counterfeiter:generate -o fakes/fake_dumper.go . Dumper
type Dumper interface {
	Dump(ctx context.Context, destinationPath string) error
	FileExtension() string
}

// Compressor replaces path with path+Suffix().
//
//counterfeiter:generate -o fakes/fake_compressor.go . Compressor
type Compressor interface {
	Compress(ctx context.Context, path string) error
	Suffix() string
}

//counterfeiter:generate -o fakes/fake_uploader.go . Uploader
type Uploader interface {
	Upload(ctx context.Context, destination Destination, artifact Artifact) error
}

//counterfeiter:generate -o fakes/fake_rate_limiter.go . RateLimiter
type RateLimiter interface {
	RateLimit(ctx context.Context) error
}
