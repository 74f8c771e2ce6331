package orchestrator

import (
	"fmt"
	"strings"
)

type RetentionPolicy int

const (
	KeepLocalCopy RetentionPolicy = iota
	KeepOnlyRemote
)

func (p RetentionPolicy) String() string {
	if p == KeepOnlyRemote {
		return "keep-only-remote"
	}
	return "keep-local-copy"
}

// BackupRequest is everything one run needs, resolved by the caller.
// Database is the dumper bound to the connection being backed up.
type BackupRequest struct {
	RequestedFilename string
	Database          Dumper
	Compress          bool
	Destinations      []Destination
	Retention         RetentionPolicy
	DumpsRoot         string
}

type DestinationKind string

const (
	ObjectStoreKind   DestinationKind = "object-store"
	SecondaryDiskKind DestinationKind = "secondary-disk"
)

type Destination interface {
	Kind() DestinationKind
	String() string
}

type ObjectStoreDestination struct {
	Bucket string
	Prefix string
}

func (d ObjectStoreDestination) Kind() DestinationKind {
	return ObjectStoreKind
}

// Key is the object key the artifact is stored under: prefix + "/" + name.
func (d ObjectStoreDestination) Key(logicalName string) string {
	prefix := strings.TrimSuffix(d.Prefix, "/")
	if prefix == "" {
		return logicalName
	}
	return prefix + "/" + logicalName
}

func (d ObjectStoreDestination) String() string {
	return fmt.Sprintf("s3://%s/%s", d.Bucket, strings.Trim(d.Prefix, "/"))
}

type SecondaryDiskDestination struct {
	Disk   string
	Folder string
}

func (d SecondaryDiskDestination) Kind() DestinationKind {
	return SecondaryDiskKind
}

func (d SecondaryDiskDestination) String() string {
	return fmt.Sprintf("disk %s:%s", d.Disk, d.Folder)
}
