package disk

import (
	"context"
	"io"
	"os"
	"path"
	"sync"

	"github.com/cloudfoundry/database-backup-and-archive/readwriter"
	"github.com/pkg/errors"
	"github.com/pkg/sftp"
	gossh "golang.org/x/crypto/ssh"
)

type SSHConnector func(ctx context.Context) (*gossh.Client, error)

// SFTPDisk is a directory on a remote host reached over SSH. The
// connection is opened on first use and shared by later calls.
type SFTPDisk struct {
	name    string
	root    string
	connect SSHConnector
	logger  readwriter.Logger

	mutex     sync.Mutex
	sshClient *gossh.Client
	client    *sftp.Client
}

func NewSFTPDisk(name, root string, connect SSHConnector, logger readwriter.Logger) *SFTPDisk {
	return &SFTPDisk{name: name, root: root, connect: connect, logger: logger}
}

func (d *SFTPDisk) DirectoryExists(ctx context.Context, folder string) (bool, error) {
	if err := checkFolder(d.name, folder); err != nil {
		return false, err
	}

	client, err := d.sftpClient(ctx)
	if err != nil {
		return false, err
	}

	info, err := client.Stat(path.Join(d.root, folder))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed reading %s on disk %s", folder, d.name)
	}
	return info.IsDir(), nil
}

// PutFile uploads under a temporary name, checks the remote size and
// renames the file into place.
func (d *SFTPDisk) PutFile(ctx context.Context, folder, sourcePath, targetName string) error {
	if err := checkFolder(d.name, folder); err != nil {
		return err
	}
	if err := checkTargetName(d.name, targetName); err != nil {
		return err
	}

	client, err := d.sftpClient(ctx)
	if err != nil {
		return err
	}

	source, err := os.Open(sourcePath)
	if err != nil {
		return errors.Wrapf(err, "failed opening %s", sourcePath)
	}
	defer source.Close()

	info, err := source.Stat()
	if err != nil {
		return errors.Wrapf(err, "failed reading %s", sourcePath)
	}

	targetPath := path.Join(d.root, folder, targetName)
	partialPath := path.Join(d.root, folder, "."+targetName+".part")

	if err := d.upload(ctx, client, source, info.Size(), partialPath); err != nil {
		client.Remove(partialPath)
		return err
	}

	remoteInfo, err := client.Stat(partialPath)
	if err != nil {
		client.Remove(partialPath)
		return errors.Wrapf(err, "failed reading back %s on disk %s", partialPath, d.name)
	}
	if remoteInfo.Size() != info.Size() {
		client.Remove(partialPath)
		return errors.Errorf("size of %s on disk %s does not match: expected %d, got %d", targetName, d.name, info.Size(), remoteInfo.Size())
	}

	if err := client.PosixRename(partialPath, targetPath); err != nil {
		client.Remove(partialPath)
		return errors.Wrapf(err, "failed moving %s into place on disk %s", targetName, d.name)
	}
	return nil
}

func (d *SFTPDisk) upload(ctx context.Context, client *sftp.Client, source io.Reader, size int64, partialPath string) error {
	remote, err := client.Create(partialPath)
	if err != nil {
		return errors.Wrapf(err, "failed creating %s on disk %s", partialPath, d.name)
	}
	defer remote.Close()

	writer := readwriter.NewLogPercentageWriter(remote, d.logger, size, "dbb", "Copying to disk "+d.name+"... %d%%")
	if _, err := io.Copy(writer, readwriter.NewContextReader(ctx, source)); err != nil {
		return errors.Wrapf(err, "failed copying to disk %s", d.name)
	}

	if err := remote.Close(); err != nil {
		return errors.Wrapf(err, "failed writing %s on disk %s", partialPath, d.name)
	}
	return nil
}

func (d *SFTPDisk) sftpClient(ctx context.Context) (*sftp.Client, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.client != nil {
		return d.client, nil
	}

	sshClient, err := d.connect(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed connecting to disk %s", d.name)
	}

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, errors.Wrapf(err, "failed starting sftp on disk %s", d.name)
	}

	d.sshClient = sshClient
	d.client = client
	return client, nil
}

func (d *SFTPDisk) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.client == nil {
		return nil
	}
	d.client.Close()
	err := d.sshClient.Close()
	d.client = nil
	d.sshClient = nil
	return err
}
