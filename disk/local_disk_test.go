package disk_test

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cloudfoundry/database-backup-and-archive/disk"
	"github.com/cloudfoundry/database-backup-and-archive/readwriter/fakes"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalDisk", func() {
	var root string
	var sourcePath string
	var logger *fakes.FakeLogger
	var localDisk disk.LocalDisk

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		sourcePath = filepath.Join(GinkgoT().TempDir(), "20240102030405.sql.gz")
		Expect(os.WriteFile(sourcePath, []byte("compressed dump"), 0600)).To(Succeed())

		logger = new(fakes.FakeLogger)
		fileSystem := boshsys.NewOsFileSystem(boshlog.NewLogger(boshlog.LevelNone))
		localDisk = disk.NewLocalDisk("archive", root, fileSystem, logger)
	})

	Describe("DirectoryExists", func() {
		It("is true for an existing folder", func() {
			Expect(os.Mkdir(filepath.Join(root, "backups"), 0755)).To(Succeed())

			exists, err := localDisk.DirectoryExists(context.Background(), "backups")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("is false for a missing folder", func() {
			exists, err := localDisk.DirectoryExists(context.Background(), "backups")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		DescribeTable("rejects folders outside the disk root",
			func(folder string) {
				_, err := localDisk.DirectoryExists(context.Background(), folder)
				Expect(err).To(MatchError(ContainSubstring("is outside disk archive")))
			},
			Entry("parent", ".."),
			Entry("grandparent", "../.."),
			Entry("sibling", "backups/../../elsewhere"),
		)

		It("keeps absolute folders inside the root", func() {
			Expect(os.Mkdir(filepath.Join(root, "backups"), 0755)).To(Succeed())

			exists, err := localDisk.DirectoryExists(context.Background(), "/backups")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("is false when the path is a file", func() {
			Expect(os.WriteFile(filepath.Join(root, "backups"), []byte{}, 0644)).To(Succeed())

			exists, err := localDisk.DirectoryExists(context.Background(), "backups")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("PutFile", func() {
		BeforeEach(func() {
			Expect(os.Mkdir(filepath.Join(root, "backups"), 0755)).To(Succeed())
		})

		It("copies the file into the folder", func() {
			Expect(localDisk.PutFile(context.Background(), "backups", sourcePath, "20240102030405.sql.gz")).To(Succeed())

			Expect(os.ReadFile(filepath.Join(root, "backups", "20240102030405.sql.gz"))).To(Equal([]byte("compressed dump")))
			Expect(filepath.Join(root, "backups", ".20240102030405.sql.gz.part")).NotTo(BeAnExistingFile())
			Expect(sourcePath).To(BeAnExistingFile())
		})

		It("logs the copy progress", func() {
			Expect(localDisk.PutFile(context.Background(), "backups", sourcePath, "x.sql.gz")).To(Succeed())

			Expect(logger.InfoCallCount()).To(Equal(1))
			tag, message, args := logger.InfoArgsForCall(0)
			Expect(tag).To(Equal("dbb"))
			Expect(message).To(ContainSubstring("Copying to disk archive"))
			Expect(args).To(Equal([]interface{}{100}))
		})

		It("refuses to write outside the disk root", func() {
			parent := filepath.Dir(root)
			err := localDisk.PutFile(context.Background(), "../..", sourcePath, "escaped.sql.gz")

			Expect(err).To(MatchError("folder ../.. is outside disk archive"))
			Expect(filepath.Join(parent, "escaped.sql.gz")).NotTo(BeAnExistingFile())
			Expect(filepath.Join(filepath.Dir(parent), "escaped.sql.gz")).NotTo(BeAnExistingFile())
		})

		It("refuses file names that are paths", func() {
			err := localDisk.PutFile(context.Background(), "backups", sourcePath, "../escaped.sql.gz")
			Expect(err).To(MatchError(ContainSubstring(`invalid file name "../escaped.sql.gz" for disk archive`)))
			Expect(filepath.Join(root, "escaped.sql.gz")).NotTo(BeAnExistingFile())
		})

		It("fails when the source is missing", func() {
			err := localDisk.PutFile(context.Background(), "backups", "/does/not/exist", "x.sql.gz")
			Expect(err).To(MatchError(ContainSubstring("failed reading /does/not/exist")))
		})

		It("fails when the folder is missing", func() {
			err := localDisk.PutFile(context.Background(), "nightly", sourcePath, "x.sql.gz")
			Expect(err).To(MatchError(ContainSubstring("failed creating")))
		})

		It("stops when the context is cancelled and leaves nothing behind", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := localDisk.PutFile(ctx, "backups", sourcePath, "x.sql.gz")
			Expect(err).To(MatchError(ContainSubstring("context canceled")))

			entries, err := os.ReadDir(filepath.Join(root, "backups"))
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})
})
