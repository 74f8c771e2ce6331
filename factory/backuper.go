package factory

import (
	"context"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/artifact"
	"github.com/cloudfoundry/database-backup-and-archive/compressor"
	"github.com/cloudfoundry/database-backup-and-archive/config"
	"github.com/cloudfoundry/database-backup-and-archive/database"
	"github.com/cloudfoundry/database-backup-and-archive/executor"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/cloudfoundry/database-backup-and-archive/ratelimiter"
	"github.com/cloudfoundry/database-backup-and-archive/uploader"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
)

// BackupOptions are the command line choices for one run. Zero values fall
// back to the config file.
type BackupOptions struct {
	Database       string
	Filename       string
	UploadS3Bucket string
	UploadDisk     string
	DiskFolder     string
	KeepOnlyRemote bool
	Compress       *bool
	Compressor     string
	SerialUploads  bool
}

// Backup is a wired backuper plus the request it should run. Close
// releases remote connections opened while uploading.
type Backup struct {
	Backuper *orchestrator.Backuper
	Request  orchestrator.BackupRequest
	Close    func() error
}

func BuildBackup(ctx context.Context, cfg config.Config, options BackupOptions, logger boshlog.Logger) (Backup, error) {
	fileSystem := boshsys.NewOsFileSystem(logger)
	runner := database.NewExecCommandRunner(logger)

	dumper, err := BuildDumper(cfg, options.Database, runner, fileSystem)
	if err != nil {
		return Backup{}, err
	}

	compress := cfg.Compress
	if options.Compress != nil {
		compress = *options.Compress
	}
	compressorName := cfg.Compressor
	if options.Compressor != "" {
		compressorName = options.Compressor
	}
	dumpCompressor, err := compressor.New(compressorName, runner, fileSystem, logger)
	if err != nil {
		return Backup{}, err
	}

	destinations, objectStore, disks, err := buildDestinations(ctx, cfg, options, fileSystem, logger)
	if err != nil {
		return Backup{}, err
	}

	rateLimiter, err := BuildRateLimiter(cfg.Uploads)
	if err != nil {
		return Backup{}, err
	}

	namer, err := artifact.NewNamerFromWorkingDirectory()
	if err != nil {
		return Backup{}, errors.Wrap(err, "could not determine the working directory")
	}

	var uploadExecutor executor.Executor = executor.NewParallelExecutor()
	if options.SerialUploads {
		uploadExecutor = executor.NewSerialExecutor()
	}

	retention := orchestrator.KeepLocalCopy
	if options.KeepOnlyRemote {
		retention = orchestrator.KeepOnlyRemote
	}

	backuper := orchestrator.NewBackuper(
		logger,
		artifact.NewLocalArtifactManager(namer, fileSystem),
		dumpCompressor,
		uploader.NewDestinationUploader(objectStore, disks.uploaderStore(), logger),
		uploadExecutor,
		rateLimiter,
		time.Now,
	)

	return Backup{
		Backuper: backuper,
		Request: orchestrator.BackupRequest{
			RequestedFilename: options.Filename,
			Database:          dumper,
			Compress:          compress,
			Destinations:      destinations,
			Retention:         retention,
			DumpsRoot:         cfg.DumpsPath,
		},
		Close: disks.close,
	}, nil
}

func BuildDumper(cfg config.Config, connectionName string, runner database.CommandRunner, fileSystem boshsys.FileSystem) (orchestrator.Dumper, error) {
	name, connection, err := cfg.Connection(connectionName)
	if err != nil {
		return nil, err
	}

	return database.NewDumper(database.Connection{
		Name:            name,
		Driver:          connection.Driver,
		Host:            connection.Host,
		Port:            connection.Port,
		Database:        connection.Database,
		Username:        connection.Username,
		Password:        connection.Password,
		DumpCommandPath: connection.DumpCommandPath,
	}, runner, fileSystem)
}

func BuildRateLimiter(uploads config.Uploads) (orchestrator.RateLimiter, error) {
	if uploads.MaxConnections == 0 {
		return ratelimiter.NewNoopRateLimiter(), nil
	}
	return ratelimiter.NewConnectionRateLimiter(uploads.MaxConnections, uploads.ConnectionWindow)
}
