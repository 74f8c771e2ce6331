package factory

import (
	"context"

	"github.com/cloudfoundry/database-backup-and-archive/config"
	"github.com/cloudfoundry/database-backup-and-archive/disk"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/cloudfoundry/database-backup-and-archive/s3"
	"github.com/cloudfoundry/database-backup-and-archive/ssh"
	"github.com/cloudfoundry/database-backup-and-archive/uploader"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/pkg/errors"
	gossh "golang.org/x/crypto/ssh"
)

const defaultDiskFolder = "backups"

type diskStore struct {
	registry *disk.Registry
}

func (d diskStore) uploaderStore() uploader.DiskStore {
	if d.registry == nil {
		return nil
	}
	return d.registry
}

func (d diskStore) close() error {
	if d.registry == nil {
		return nil
	}
	return d.registry.Close()
}

// buildDestinations resolves the requested destinations in upload order:
// the bucket first, then the disk. Only the stores that are needed are
// built.
func buildDestinations(ctx context.Context, cfg config.Config, options BackupOptions, fileSystem boshsys.FileSystem, logger boshlog.Logger) ([]orchestrator.Destination, uploader.ObjectStore, diskStore, error) {
	var destinations []orchestrator.Destination
	var objectStore uploader.ObjectStore
	var disks diskStore

	if options.UploadS3Bucket != "" {
		client, err := s3.NewClient(ctx, s3.Config{
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			ForcePathStyle:  cfg.S3.ForcePathStyle,
			RoleARN:         cfg.S3.RoleARN,
			PartSize:        cfg.S3.PartSize,
		}, logger)
		if err != nil {
			return nil, nil, diskStore{}, err
		}
		objectStore = client
		destinations = append(destinations, orchestrator.ObjectStoreDestination{
			Bucket: options.UploadS3Bucket,
			Prefix: cfg.S3.Path,
		})
	}

	if options.UploadDisk != "" {
		diskConfig, ok := cfg.Disks[options.UploadDisk]
		if !ok {
			return nil, nil, diskStore{}, errors.Errorf("disk %s is not configured", options.UploadDisk)
		}

		uploadDisk, err := BuildDisk(options.UploadDisk, diskConfig, fileSystem, logger)
		if err != nil {
			return nil, nil, diskStore{}, err
		}
		disks.registry = disk.NewRegistry(map[string]disk.Disk{options.UploadDisk: uploadDisk})

		folder := options.DiskFolder
		if folder == "" {
			folder = defaultDiskFolder
		}
		destinations = append(destinations, orchestrator.SecondaryDiskDestination{
			Disk:   options.UploadDisk,
			Folder: folder,
		})
	}

	return destinations, objectStore, disks, nil
}

func BuildDisk(name string, diskConfig config.Disk, fileSystem boshsys.FileSystem, logger boshlog.Logger) (disk.Disk, error) {
	switch diskConfig.Driver {
	case "local":
		root, err := fileSystem.ExpandPath(diskConfig.Root)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid root for disk %s", name)
		}
		return disk.NewLocalDisk(name, root, fileSystem, logger), nil
	case "sftp":
		return buildSFTPDisk(name, diskConfig, fileSystem, logger)
	default:
		return nil, errors.Errorf("disk %s uses unsupported driver %q", name, diskConfig.Driver)
	}
}

func buildSFTPDisk(name string, diskConfig config.Disk, fileSystem boshsys.FileSystem, logger boshlog.Logger) (disk.Disk, error) {
	privateKeyPath, err := fileSystem.ExpandPath(diskConfig.PrivateKeyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid private_key_path for disk %s", name)
	}
	privateKey, err := fileSystem.ReadFileString(privateKeyPath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read private key for disk %s", name)
	}

	hostKeyCallback, err := ssh.HostKeyCallback(diskConfig.KnownHostsPath, diskConfig.InsecureIgnoreHostKey)
	if err != nil {
		return nil, errors.Wrapf(err, "disk %s", name)
	}

	connect := func(ctx context.Context) (*gossh.Client, error) {
		return ssh.ConnectionCreator(ctx, diskConfig.Host, diskConfig.Username, privateKey, hostKeyCallback, logger)
	}

	return disk.NewSFTPDisk(name, diskConfig.Root, connect, logger), nil
}
