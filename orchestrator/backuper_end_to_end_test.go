package orchestrator_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/artifact"
	"github.com/cloudfoundry/database-backup-and-archive/compressor"
	"github.com/cloudfoundry/database-backup-and-archive/executor"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator/fakes"
	"github.com/cloudfoundry/database-backup-and-archive/ratelimiter"
	"github.com/cloudfoundry/database-backup-and-archive/uploader"
	uploaderfakes "github.com/cloudfoundry/database-backup-and-archive/uploader/fakes"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/klauspost/compress/gzip"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Backuper end to end", func() {
	var (
		workingDirectory string
		objectStore      *uploaderfakes.FakeObjectStore
		uploadedContents string
		result           orchestrator.RunResult
	)

	BeforeEach(func() {
		workingDirectory = GinkgoT().TempDir()
		objectStore = new(uploaderfakes.FakeObjectStore)
		objectStore.PutObjectStub = func(_ context.Context, _, _, sourcePath string, _ map[string]string) error {
			file, err := os.Open(sourcePath)
			if err != nil {
				return err
			}
			defer file.Close()

			reader, err := gzip.NewReader(file)
			if err != nil {
				return err
			}
			contents, err := io.ReadAll(reader)
			uploadedContents = string(contents)
			return err
		}

		logger := boshlog.NewLogger(boshlog.LevelNone)
		fileSystem := boshsys.NewOsFileSystem(logger)

		dumper := new(fakes.FakeDumper)
		dumper.FileExtensionReturns("sql")
		dumper.DumpStub = func(_ context.Context, path string) error {
			return os.WriteFile(path, []byte("CREATE TABLE users (id INT);"), 0644)
		}

		now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		backuper := orchestrator.NewBackuper(
			logger,
			artifact.NewLocalArtifactManager(artifact.NewNamer(workingDirectory), fileSystem),
			compressor.NewGzipCompressor(fileSystem, logger),
			uploader.NewDestinationUploader(objectStore, nil, logger),
			executor.NewParallelExecutor(),
			ratelimiter.NewNoopRateLimiter(),
			func() time.Time { return now },
		)

		result = backuper.Backup(context.Background(), orchestrator.BackupRequest{
			Database:     dumper,
			Compress:     true,
			Destinations: []orchestrator.Destination{orchestrator.ObjectStoreDestination{Bucket: "b", Prefix: "dumps"}},
			Retention:    orchestrator.KeepOnlyRemote,
			DumpsRoot:    "dumps",
		})
	})

	It("succeeds", func() {
		Expect(result.Success()).To(BeTrue())
		Expect(result.Errors()).To(BeEmpty())
	})

	It("uploads the compressed dump under the prefixed timestamped key", func() {
		Expect(objectStore.PutObjectCallCount()).To(Equal(1))
		_, bucket, key, sourcePath, metadata := objectStore.PutObjectArgsForCall(0)
		Expect(bucket).To(Equal("b"))
		Expect(key).To(Equal("dumps/20240102030405.sql.gz"))
		Expect(sourcePath).To(Equal(filepath.Join(workingDirectory, "dumps", "20240102030405.sql.gz")))
		Expect(metadata).To(HaveKeyWithValue(uploader.ChecksumMetadataKey, result.Artifact.Checksum))
		Expect(uploadedContents).To(Equal("CREATE TABLE users (id INT);"))
	})

	It("removes the local dump", func() {
		Expect(result.LocalArtifactRemoved).To(BeTrue())
		Expect(filepath.Join(workingDirectory, "dumps", "20240102030405.sql.gz")).NotTo(BeAnExistingFile())
		Expect(filepath.Join(workingDirectory, "dumps", "20240102030405.sql")).NotTo(BeAnExistingFile())
	})
})
