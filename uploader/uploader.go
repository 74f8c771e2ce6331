package uploader

import (
	"context"

	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const ChecksumMetadataKey = "sha256"

//counterfeiter:generate -o fakes/fake_object_store.go . ObjectStore
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key, sourcePath string, metadata map[string]string) error
}

//counterfeiter:generate -o fakes/fake_disk_store.go . DiskStore
type DiskStore interface {
	DirectoryExists(ctx context.Context, disk, folder string) (bool, error)
	PutFile(ctx context.Context, disk, folder, sourcePath, targetName string) error
}

// DestinationUploader sends an artifact to whichever store the destination
// names. A nil store means that kind of destination is not configured.
type DestinationUploader struct {
	objectStore ObjectStore
	diskStore   DiskStore
	logger      orchestrator.Logger
}

func NewDestinationUploader(objectStore ObjectStore, diskStore DiskStore, logger orchestrator.Logger) DestinationUploader {
	return DestinationUploader{objectStore: objectStore, diskStore: diskStore, logger: logger}
}

func (u DestinationUploader) Upload(ctx context.Context, destination orchestrator.Destination, artifact orchestrator.Artifact) error {
	switch destination := destination.(type) {
	case orchestrator.ObjectStoreDestination:
		return u.uploadToObjectStore(ctx, destination, artifact)
	case orchestrator.SecondaryDiskDestination:
		return u.uploadToDisk(ctx, destination, artifact)
	default:
		return errors.Errorf("unsupported destination %v", destination)
	}
}

func (u DestinationUploader) uploadToObjectStore(ctx context.Context, destination orchestrator.ObjectStoreDestination, artifact orchestrator.Artifact) error {
	if u.objectStore == nil {
		return errors.New("object storage is not configured")
	}

	key := destination.Key(artifact.LogicalName)
	var metadata map[string]string
	if artifact.Checksum != "" {
		metadata = map[string]string{ChecksumMetadataKey: artifact.Checksum}
	}

	u.logger.Debug("dbb", "Putting %s to bucket %s as %s", artifact.LocalPath, destination.Bucket, key)
	return u.objectStore.PutObject(ctx, destination.Bucket, key, artifact.LocalPath, metadata)
}

func (u DestinationUploader) uploadToDisk(ctx context.Context, destination orchestrator.SecondaryDiskDestination, artifact orchestrator.Artifact) error {
	if u.diskStore == nil {
		return errors.New("no disks are configured")
	}

	exists, err := u.diskStore.DirectoryExists(ctx, destination.Disk, destination.Folder)
	if err != nil {
		return errors.Wrapf(err, "failed checking folder %s on disk %s", destination.Folder, destination.Disk)
	}
	if !exists {
		return orchestrator.FolderNotFoundError{Disk: destination.Disk, Folder: destination.Folder}
	}

	u.logger.Debug("dbb", "Putting %s to %s", artifact.LocalPath, destination)
	return u.diskStore.PutFile(ctx, destination.Disk, destination.Folder, artifact.LocalPath, artifact.LogicalName)
}
