package uploader_test

import (
	"context"

	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	orchestratorfakes "github.com/cloudfoundry/database-backup-and-archive/orchestrator/fakes"
	"github.com/cloudfoundry/database-backup-and-archive/uploader"
	"github.com/cloudfoundry/database-backup-and-archive/uploader/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

type unknownDestination struct{}

func (unknownDestination) Kind() orchestrator.DestinationKind { return "ftp" }
func (unknownDestination) String() string                     { return "ftp://somewhere" }

var _ = Describe("DestinationUploader", func() {
	var ctx context.Context
	var objectStore *fakes.FakeObjectStore
	var diskStore *fakes.FakeDiskStore
	var subject uploader.DestinationUploader
	var artifact orchestrator.Artifact
	var err error

	BeforeEach(func() {
		ctx = context.Background()
		objectStore = new(fakes.FakeObjectStore)
		diskStore = new(fakes.FakeDiskStore)
		subject = uploader.NewDestinationUploader(objectStore, diskStore, new(orchestratorfakes.FakeLogger))
		artifact = orchestrator.Artifact{
			LocalPath:   "/srv/app/dumps/20240102030405.sql.gz",
			LogicalName: "20240102030405.sql.gz",
			Size:        42,
			Compressed:  true,
			Checksum:    "abc123",
		}
	})

	Describe("object store destinations", func() {
		var destination orchestrator.ObjectStoreDestination

		BeforeEach(func() {
			destination = orchestrator.ObjectStoreDestination{Bucket: "b", Prefix: "dumps"}
		})

		JustBeforeEach(func() {
			err = subject.Upload(ctx, destination, artifact)
		})

		It("puts the file under the prefixed key", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(objectStore.PutObjectCallCount()).To(Equal(1))

			_, bucket, key, sourcePath, metadata := objectStore.PutObjectArgsForCall(0)
			Expect(bucket).To(Equal("b"))
			Expect(key).To(Equal("dumps/20240102030405.sql.gz"))
			Expect(sourcePath).To(Equal("/srv/app/dumps/20240102030405.sql.gz"))
			Expect(metadata).To(Equal(map[string]string{"sha256": "abc123"}))
		})

		Context("when the prefix is empty", func() {
			BeforeEach(func() {
				destination.Prefix = ""
			})

			It("uses the bare file name as the key", func() {
				_, _, key, _, _ := objectStore.PutObjectArgsForCall(0)
				Expect(key).To(Equal("20240102030405.sql.gz"))
			})
		})

		Context("when the prefix ends with a slash", func() {
			BeforeEach(func() {
				destination.Prefix = "nightly/"
			})

			It("does not double the separator", func() {
				_, _, key, _, _ := objectStore.PutObjectArgsForCall(0)
				Expect(key).To(Equal("nightly/20240102030405.sql.gz"))
			})
		})

		Context("when the put fails", func() {
			BeforeEach(func() {
				objectStore.PutObjectReturns(errors.New("AccessDenied"))
			})

			It("returns the error", func() {
				Expect(err).To(MatchError("AccessDenied"))
			})
		})

		Context("when object storage is not configured", func() {
			BeforeEach(func() {
				subject = uploader.NewDestinationUploader(nil, diskStore, new(orchestratorfakes.FakeLogger))
			})

			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("not configured")))
			})
		})
	})

	Describe("secondary disk destinations", func() {
		var destination orchestrator.SecondaryDiskDestination

		BeforeEach(func() {
			destination = orchestrator.SecondaryDiskDestination{Disk: "archive", Folder: "backups"}
			diskStore.DirectoryExistsReturns(true, nil)
		})

		JustBeforeEach(func() {
			err = subject.Upload(ctx, destination, artifact)
		})

		It("checks the folder and puts the file under its logical name", func() {
			Expect(err).NotTo(HaveOccurred())

			_, disk, folder := diskStore.DirectoryExistsArgsForCall(0)
			Expect(disk).To(Equal("archive"))
			Expect(folder).To(Equal("backups"))

			Expect(diskStore.PutFileCallCount()).To(Equal(1))
			_, disk, folder, sourcePath, targetName := diskStore.PutFileArgsForCall(0)
			Expect(disk).To(Equal("archive"))
			Expect(folder).To(Equal("backups"))
			Expect(sourcePath).To(Equal(artifact.LocalPath))
			Expect(targetName).To(Equal("20240102030405.sql.gz"))
		})

		Context("when the folder does not exist", func() {
			BeforeEach(func() {
				diskStore.DirectoryExistsReturns(false, nil)
			})

			It("returns FolderNotFoundError without transferring", func() {
				Expect(err).To(Equal(orchestrator.FolderNotFoundError{Disk: "archive", Folder: "backups"}))
				Expect(diskStore.PutFileCallCount()).To(BeZero())
			})
		})

		Context("when checking the folder fails", func() {
			BeforeEach(func() {
				diskStore.DirectoryExistsReturns(false, errors.New("connection reset"))
			})

			It("returns the error without transferring", func() {
				Expect(err).To(MatchError(ContainSubstring("connection reset")))
				Expect(diskStore.PutFileCallCount()).To(BeZero())
			})
		})

		Context("when the transfer fails", func() {
			BeforeEach(func() {
				diskStore.PutFileReturns(errors.New("disk full"))
			})

			It("returns the error", func() {
				Expect(err).To(MatchError("disk full"))
			})
		})

		Context("when no disks are configured", func() {
			BeforeEach(func() {
				subject = uploader.NewDestinationUploader(objectStore, nil, new(orchestratorfakes.FakeLogger))
			})

			It("fails", func() {
				Expect(err).To(MatchError(ContainSubstring("no disks are configured")))
			})
		})
	})

	It("rejects unknown destination kinds", func() {
		err := subject.Upload(ctx, unknownDestination{}, artifact)
		Expect(err).To(MatchError(ContainSubstring("unsupported destination")))
	})
})
