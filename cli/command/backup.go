package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudfoundry/database-backup-and-archive/cli/flags"
	"github.com/cloudfoundry/database-backup-and-archive/factory"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type BackupCommand struct {
}

func NewBackupCommand() BackupCommand {
	return BackupCommand{}
}

func (b BackupCommand) Cli() cli.Command {
	return cli.Command{
		Name:      "backup",
		Aliases:   []string{"b"},
		Usage:     "Dump a database and optionally upload the dump",
		ArgsUsage: "[FILENAME]",
		Action:    b.Action,
		Before:    flags.ValidateBackupFlags,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "database, d",
				Usage: "Name of the connection to back up (defaults to default_connection)",
			},
			cli.StringFlag{
				Name:  "upload-s3, u",
				Usage: "Upload the dump to this S3 bucket",
			},
			cli.StringFlag{
				Name:  "upload-disk",
				Usage: "Upload the dump to this configured disk",
			},
			cli.StringFlag{
				Name:  "disk-folder",
				Usage: "Folder on the upload disk (defaults to backups)",
			},
			cli.BoolFlag{
				Name:  "keep-only-remote, keep-only-s3",
				Usage: "Delete the local dump after at least one successful upload",
			},
			cli.BoolFlag{
				Name:  "compress",
				Usage: "Compress the dump",
			},
			cli.BoolFlag{
				Name:  "no-compress",
				Usage: "Do not compress the dump",
			},
			cli.StringFlag{
				Name:  "compressor",
				Usage: "Compressor to use: gzip, zstd or gzip-command",
			},
			cli.BoolFlag{
				Name:  "serial-uploads",
				Usage: "Upload to one destination at a time",
			},
			cli.DurationFlag{
				Name:  "timeout",
				Usage: "Abort the backup after this long",
			},
		},
	}
}

func (b BackupCommand) Action(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if timeout := c.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := factory.BuildLogger(c.GlobalBool("debug"))

	cfg, err := loadConfig(c.GlobalString("config"), logger)
	if err != nil {
		return redCliError(err)
	}

	backup, err := factory.BuildBackup(ctx, cfg, backupOptions(c), logger)
	if err != nil {
		return redCliError(err)
	}
	defer func() {
		if err := backup.Close(); err != nil {
			logger.Warn("dbb", "Closing disk connections failed: %s", err)
		}
	}()

	result := backup.Backuper.Backup(ctx, backup.Request)
	printResult(c.App.Writer, backup.Request, result)

	backupErr := result.Errors()
	errorCode, errorMessage, errorWithStackTrace := orchestrator.ProcessError(backupErr)
	if err := writeStackTrace(errorWithStackTrace); err != nil {
		return errors.Wrap(backupErr, err.Error())
	}

	if backupErr.ContainsUploadOrCleanup() && !result.LocalArtifactRemoved && result.Artifact.LocalPath != "" {
		errorMessage = errorMessage + "\n" + fmt.Sprintf(localDumpKeptNotice, result.Artifact.LocalPath)
	}

	return cli.NewExitError(errorMessage, errorCode)
}

func backupOptions(c *cli.Context) factory.BackupOptions {
	options := factory.BackupOptions{
		Database:       c.String("database"),
		Filename:       c.Args().First(),
		UploadS3Bucket: c.String("upload-s3"),
		UploadDisk:     c.String("upload-disk"),
		DiskFolder:     c.String("disk-folder"),
		KeepOnlyRemote: c.Bool("keep-only-remote"),
		Compressor:     c.String("compressor"),
		SerialUploads:  c.Bool("serial-uploads"),
	}

	if c.Bool("compress") {
		compress := true
		options.Compress = &compress
	} else if c.Bool("no-compress") {
		compress := false
		options.Compress = &compress
	}

	return options
}

func printResult(writer io.Writer, request orchestrator.BackupRequest, result orchestrator.RunResult) {
	if !result.Success() {
		printlnInColor(writer, "red", backupFailedMessage)
		return
	}

	if request.RequestedFilename != "" {
		printlnInColor(writer, "green", backupSavedToPathMessage, result.Artifact.LocalPath)
	} else {
		printlnInColor(writer, "green", backupSavedInDumpsFolderMessage, result.Artifact.LogicalName)
	}

	for _, upload := range result.UploadResults {
		if upload.Succeeded() {
			printlnInColor(writer, "green", uploadCompleteMessage, upload.Destination)
		} else {
			printlnInColor(writer, "red", uploadFailedMessage, upload.Destination)
		}
	}

	if result.LocalArtifactRemoved {
		printlnInColor(writer, "green", localDumpRemovedMessage)
	}
}
