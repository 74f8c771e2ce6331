package factory_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/config"
	"github.com/cloudfoundry/database-backup-and-archive/factory"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/cloudfoundry/database-backup-and-archive/ratelimiter"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildBackup", func() {
	var cfg config.Config
	var options factory.BackupOptions
	var backup factory.Backup
	var err error

	BeforeEach(func() {
		cfg = config.Config{
			DefaultConnection: "main",
			DumpsPath:         "dumps",
			Compressor:        "gzip",
			Connections: map[string]config.Connection{
				"main":    {Driver: "sqlite", Database: "/srv/app.sqlite"},
				"reports": {Driver: "pgsql", Database: "reports"},
			},
			S3: config.S3{Path: "nightly", Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"},
			Disks: map[string]config.Disk{
				"archive": {Driver: "local", Root: "/mnt/archive"},
			},
		}
		options = factory.BackupOptions{}
	})

	JustBeforeEach(func() {
		logger := factory.BuildBoshLoggerWithCustomWriter(new(bytes.Buffer), false)
		backup, err = factory.BuildBackup(context.Background(), cfg, options, logger)
	})

	It("builds a request for the default connection", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(backup.Backuper).NotTo(BeNil())
		Expect(backup.Request.Database.FileExtension()).To(Equal("sqlite"))
		Expect(backup.Request.DumpsRoot).To(Equal("dumps"))
		Expect(backup.Request.Compress).To(BeFalse())
		Expect(backup.Request.Destinations).To(BeEmpty())
		Expect(backup.Request.Retention).To(Equal(orchestrator.KeepLocalCopy))
		Expect(backup.Close()).To(Succeed())
	})

	Context("when a connection and filename are given", func() {
		BeforeEach(func() {
			options.Database = "reports"
			options.Filename = "/tmp/reports.dump"
		})

		It("uses them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(backup.Request.Database.FileExtension()).To(Equal("dump"))
			Expect(backup.Request.RequestedFilename).To(Equal("/tmp/reports.dump"))
		})
	})

	Context("when uploads are requested", func() {
		BeforeEach(func() {
			options.UploadS3Bucket = "b"
			options.UploadDisk = "archive"
			options.KeepOnlyRemote = true
		})

		It("adds the bucket then the disk", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(backup.Request.Destinations).To(Equal([]orchestrator.Destination{
				orchestrator.ObjectStoreDestination{Bucket: "b", Prefix: "nightly"},
				orchestrator.SecondaryDiskDestination{Disk: "archive", Folder: "backups"},
			}))
			Expect(backup.Request.Retention).To(Equal(orchestrator.KeepOnlyRemote))
		})

		Context("with a disk folder", func() {
			BeforeEach(func() {
				options.DiskFolder = "db"
			})

			It("uses the folder", func() {
				Expect(backup.Request.Destinations[1]).To(Equal(orchestrator.SecondaryDiskDestination{Disk: "archive", Folder: "db"}))
			})
		})
	})

	Context("when the disk is not configured", func() {
		BeforeEach(func() {
			options.UploadDisk = "tape"
		})

		It("fails before anything runs", func() {
			Expect(err).To(MatchError("disk tape is not configured"))
		})
	})

	Context("when the sftp private key cannot be read", func() {
		BeforeEach(func() {
			cfg.Disks["offsite"] = config.Disk{
				Driver:                "sftp",
				Host:                  "backup.example.com",
				Username:              "backup",
				PrivateKeyPath:        "/does/not/exist",
				Root:                  "/srv/backups",
				InsecureIgnoreHostKey: true,
			}
			options.UploadDisk = "offsite"
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("could not read private key for disk offsite")))
		})
	})

	Context("when an sftp disk is configured", func() {
		BeforeEach(func() {
			keyPath := filepath.Join(GinkgoT().TempDir(), "id_rsa")
			Expect(os.WriteFile(keyPath, []byte("key"), 0600)).To(Succeed())
			cfg.Disks["offsite"] = config.Disk{
				Driver:                "sftp",
				Host:                  "backup.example.com",
				Username:              "backup",
				PrivateKeyPath:        keyPath,
				Root:                  "/srv/backups",
				InsecureIgnoreHostKey: true,
			}
			options.UploadDisk = "offsite"
		})

		It("does not connect until the upload", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(backup.Close()).To(Succeed())
		})
	})

	Context("when the connection is not configured", func() {
		BeforeEach(func() {
			options.Database = "missing"
		})

		It("fails", func() {
			Expect(err).To(MatchError("database connection missing is not configured"))
		})
	})

	Context("when compression is overridden", func() {
		BeforeEach(func() {
			compress := true
			options.Compress = &compress
		})

		It("compresses", func() {
			Expect(backup.Request.Compress).To(BeTrue())
		})
	})

	Context("when the compressor is unknown", func() {
		BeforeEach(func() {
			options.Compressor = "brotli"
		})

		It("fails", func() {
			Expect(err).To(MatchError(`unknown compressor "brotli"`))
		})
	})
})

var _ = Describe("BuildRateLimiter", func() {
	It("does not limit when no maximum is configured", func() {
		limiter, err := factory.BuildRateLimiter(config.Uploads{})
		Expect(err).NotTo(HaveOccurred())
		Expect(limiter).To(Equal(ratelimiter.NewNoopRateLimiter()))
	})

	It("limits connections per window", func() {
		limiter, err := factory.BuildRateLimiter(config.Uploads{MaxConnections: 2, ConnectionWindow: time.Second})
		Expect(err).NotTo(HaveOccurred())
		Expect(limiter).To(BeAssignableToTypeOf(&ratelimiter.ConnectionRateLimiter{}))
	})

	It("rejects invalid limits", func() {
		_, err := factory.BuildRateLimiter(config.Uploads{MaxConnections: 500, ConnectionWindow: time.Second})
		Expect(err).To(HaveOccurred())
	})
})
