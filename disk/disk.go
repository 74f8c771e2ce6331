package disk

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Disk is a named storage location that dumps can be copied to. Folders
// are relative to the disk root.
//
//counterfeiter:generate -o fakes/fake_disk.go . Disk
type Disk interface {
	DirectoryExists(ctx context.Context, folder string) (bool, error)
	PutFile(ctx context.Context, folder, sourcePath, targetName string) error
}

// Registry resolves disk names to disks.
type Registry struct {
	disks map[string]Disk
}

func NewRegistry(disks map[string]Disk) *Registry {
	return &Registry{disks: disks}
}

func (r *Registry) DirectoryExists(ctx context.Context, diskName, folder string) (bool, error) {
	disk, err := r.find(diskName)
	if err != nil {
		return false, err
	}
	return disk.DirectoryExists(ctx, folder)
}

func (r *Registry) PutFile(ctx context.Context, diskName, folder, sourcePath, targetName string) error {
	disk, err := r.find(diskName)
	if err != nil {
		return err
	}
	return disk.PutFile(ctx, folder, sourcePath, targetName)
}

func (r *Registry) Names() []string {
	var names []string
	for name := range r.disks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases any connections held by the disks.
func (r *Registry) Close() error {
	var closeErrs []error
	for _, name := range r.Names() {
		if closer, ok := r.disks[name].(io.Closer); ok {
			if err := closer.Close(); err != nil {
				closeErrs = append(closeErrs, errors.Wrapf(err, "failed closing disk %s", name))
			}
		}
	}
	if len(closeErrs) > 0 {
		return closeErrs[0]
	}
	return nil
}

func (r *Registry) find(diskName string) (Disk, error) {
	disk, ok := r.disks[diskName]
	if !ok {
		return nil, errors.Errorf("disk %s is not configured", diskName)
	}
	return disk, nil
}

// checkFolder rejects folders that climb out of the disk root once joined
// onto it.
func checkFolder(diskName, folder string) error {
	cleaned := path.Clean(filepath.ToSlash(folder))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return errors.Errorf("folder %s is outside disk %s", folder, diskName)
	}
	return nil
}

func checkTargetName(diskName, targetName string) error {
	if targetName == "" || targetName == "." || targetName == ".." || strings.ContainsAny(targetName, `/\`) {
		return errors.Errorf("invalid file name %q for disk %s", targetName, diskName)
	}
	return nil
}
