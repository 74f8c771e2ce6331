package compressor_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cloudfoundry/database-backup-and-archive/compressor"
	"github.com/cloudfoundry/database-backup-and-archive/database"
	databasefakes "github.com/cloudfoundry/database-backup-and-archive/database/fakes"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator"
	"github.com/cloudfoundry/database-backup-and-archive/orchestrator/fakes"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Compressors", func() {
	var fileSystem boshsys.FileSystem
	var logger *fakes.FakeLogger
	var dumpPath string
	var contents []byte

	BeforeEach(func() {
		fileSystem = boshsys.NewOsFileSystem(boshlog.NewLogger(boshlog.LevelNone))
		logger = new(fakes.FakeLogger)
		dumpPath = filepath.Join(GinkgoT().TempDir(), "20240101000000.sql")
		contents = bytes.Repeat([]byte("INSERT INTO users VALUES (1, 'someone');\n"), 1000)
		Expect(os.WriteFile(dumpPath, contents, 0600)).To(Succeed())
	})

	StreamCompressorTests := func(name, suffix string, newCompressor func() orchestrator.Compressor, decompress func(io.Reader) ([]byte, error)) {
		Describe(name, func() {
			var subject orchestrator.Compressor

			BeforeEach(func() {
				subject = newCompressor()
			})

			It("uses the "+suffix+" suffix", func() {
				Expect(subject.Suffix()).To(Equal(suffix))
			})

			It("replaces the file with its compressed version", func() {
				Expect(subject.Compress(context.Background(), dumpPath)).To(Succeed())

				Expect(dumpPath).NotTo(BeAnExistingFile())
				Expect(dumpPath + suffix + ".partial").NotTo(BeAnExistingFile())

				compressed, err := os.Open(dumpPath + suffix)
				Expect(err).NotTo(HaveOccurred())
				defer compressed.Close()

				info, err := compressed.Stat()
				Expect(err).NotTo(HaveOccurred())
				Expect(info.Size()).To(BeNumerically("<", len(contents)))

				Expect(decompress(compressed)).To(Equal(contents))
			})

			It("logs progress", func() {
				Expect(subject.Compress(context.Background(), dumpPath)).To(Succeed())
				Expect(logger.InfoCallCount()).To(BeNumerically(">", 0))
				_, message, _ := logger.InfoArgsForCall(0)
				Expect(message).To(ContainSubstring("Compressing"))
			})

			Context("when the file does not exist", func() {
				It("fails without creating anything", func() {
					missing := filepath.Join(filepath.Dir(dumpPath), "missing.sql")
					Expect(subject.Compress(context.Background(), missing)).To(MatchError(ContainSubstring("failed reading")))
					Expect(missing + suffix).NotTo(BeAnExistingFile())
				})
			})

			Context("when the context is cancelled", func() {
				It("fails and keeps the original file", func() {
					ctx, cancel := context.WithCancel(context.Background())
					cancel()

					Expect(subject.Compress(ctx, dumpPath)).To(MatchError(ContainSubstring("context canceled")))
					Expect(dumpPath).To(BeAnExistingFile())
					Expect(dumpPath + suffix).NotTo(BeAnExistingFile())
					Expect(dumpPath + suffix + ".partial").NotTo(BeAnExistingFile())
				})
			})
		})
	}

	StreamCompressorTests("GzipCompressor", ".gz",
		func() orchestrator.Compressor { return compressor.NewGzipCompressor(fileSystem, logger) },
		func(r io.Reader) ([]byte, error) {
			reader, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			return io.ReadAll(reader)
		},
	)

	StreamCompressorTests("ZstdCompressor", ".zst",
		func() orchestrator.Compressor { return compressor.NewZstdCompressor(fileSystem, logger) },
		func(r io.Reader) ([]byte, error) {
			decoder, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}
			defer decoder.Close()
			return io.ReadAll(decoder)
		},
	)

	Describe("CommandCompressor", func() {
		var runner *databasefakes.FakeCommandRunner
		var subject compressor.CommandCompressor

		BeforeEach(func() {
			runner = new(databasefakes.FakeCommandRunner)
			subject = compressor.NewCommandCompressor(runner, fileSystem)
		})

		It("runs gzip at best compression", func() {
			runner.RunStub = func(_ context.Context, command database.Command) error {
				return os.Rename(dumpPath, dumpPath+".gz")
			}

			Expect(subject.Compress(context.Background(), dumpPath)).To(Succeed())

			_, command := runner.RunArgsForCall(0)
			Expect(command.Path).To(Equal("gzip"))
			Expect(command.Args).To(Equal([]string{"-9", "-f", dumpPath}))
			Expect(subject.Suffix()).To(Equal(".gz"))
		})

		It("returns the error from gzip", func() {
			runner.RunReturns(errors.New("gzip failed: No space left on device"))
			Expect(subject.Compress(context.Background(), dumpPath)).To(MatchError(ContainSubstring("No space left")))
		})

		It("fails when gzip produced nothing", func() {
			Expect(subject.Compress(context.Background(), dumpPath)).To(MatchError(ContainSubstring("did not produce")))
		})
	})

	Describe("New", func() {
		DescribeTable("builds the compressor by name",
			func(name, suffix string) {
				built, err := compressor.New(name, new(databasefakes.FakeCommandRunner), fileSystem, logger)
				Expect(err).NotTo(HaveOccurred())
				Expect(built.Suffix()).To(Equal(suffix))
			},
			Entry("default", "", ".gz"),
			Entry("gzip", "gzip", ".gz"),
			Entry("zstd", "zstd", ".zst"),
			Entry("gzip-command", "gzip-command", ".gz"),
		)

		It("rejects unknown names", func() {
			_, err := compressor.New("brotli", nil, fileSystem, logger)
			Expect(err).To(MatchError(`unknown compressor "brotli"`))
		})
	})
})
