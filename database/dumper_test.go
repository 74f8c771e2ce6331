package database_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudfoundry/database-backup-and-archive/database"
	"github.com/cloudfoundry/database-backup-and-archive/database/fakes"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

func argumentValue(args []string, prefix string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, prefix) {
			return strings.TrimPrefix(arg, prefix)
		}
	}
	return ""
}

func argumentAfter(args []string, flag string) string {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

var _ = Describe("Dumpers", func() {
	var ctx context.Context
	var runner *fakes.FakeCommandRunner
	var fileSystem boshsys.FileSystem
	var dumpsDirectory string
	var destinationPath string

	BeforeEach(func() {
		ctx = context.Background()
		runner = new(fakes.FakeCommandRunner)
		fileSystem = boshsys.NewOsFileSystem(boshlog.NewLogger(boshlog.LevelNone))
		dumpsDirectory = GinkgoT().TempDir()
		destinationPath = filepath.Join(dumpsDirectory, "20240101000000.sql")
	})

	Describe("MySQLDumper", func() {
		var dumper database.MySQLDumper

		BeforeEach(func() {
			dumper = database.NewMySQLDumper(database.Connection{
				Name:     "main",
				Driver:   "mysql",
				Host:     "db.internal",
				Port:     3306,
				Database: "app",
				Username: "root",
				Password: "s3cret",
			}, runner, fileSystem)
		})

		It("uses the sql extension", func() {
			Expect(dumper.FileExtension()).To(Equal("sql"))
		})

		Context("when mysqldump succeeds", func() {
			BeforeEach(func() {
				runner.RunStub = func(_ context.Context, command database.Command) error {
					return os.WriteFile(argumentValue(command.Args, "--result-file="), []byte("CREATE TABLE users;"), 0600)
				}
			})

			It("writes the dump to the destination", func() {
				Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())
				Expect(os.ReadFile(destinationPath)).To(Equal([]byte("CREATE TABLE users;")))
			})

			It("invokes mysqldump with the connection details", func() {
				Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())

				Expect(runner.RunCallCount()).To(Equal(1))
				_, command := runner.RunArgsForCall(0)
				Expect(command.Path).To(Equal("mysqldump"))
				Expect(command.Args).To(ContainElements("--routines", "--host=db.internal", "--port=3306", "--user=root"))
				Expect(command.Args[len(command.Args)-1]).To(Equal("app"))
				Expect(command.Env).To(ConsistOf("MYSQL_PWD=s3cret"))
			})

			It("never passes the password as an argument", func() {
				Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())
				_, command := runner.RunArgsForCall(0)
				Expect(strings.Join(command.Args, " ")).NotTo(ContainSubstring("s3cret"))
			})

			It("writes to a temporary file next to the destination", func() {
				Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())
				_, command := runner.RunArgsForCall(0)
				partialPath := argumentValue(command.Args, "--result-file=")
				Expect(filepath.Dir(partialPath)).To(Equal(dumpsDirectory))
				Expect(partialPath).NotTo(Equal(destinationPath))
				Expect(partialPath).NotTo(BeAnExistingFile())
			})
		})

		Context("when mysqldump fails after writing part of the dump", func() {
			BeforeEach(func() {
				runner.RunStub = func(_ context.Context, command database.Command) error {
					Expect(os.WriteFile(argumentValue(command.Args, "--result-file="), []byte("CREATE"), 0600)).To(Succeed())
					return errors.New("mysqldump failed: Access denied")
				}
			})

			It("returns the error and leaves no file behind", func() {
				err := dumper.Dump(ctx, destinationPath)
				Expect(err).To(MatchError(ContainSubstring("Access denied")))

				Expect(destinationPath).NotTo(BeAnExistingFile())
				entries, err := os.ReadDir(dumpsDirectory)
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(BeEmpty())
			})
		})

		Context("when mysqldump exits successfully without writing anything", func() {
			It("fails", func() {
				err := dumper.Dump(ctx, destinationPath)
				Expect(err).To(MatchError(ContainSubstring("without writing")))
				Expect(destinationPath).NotTo(BeAnExistingFile())
			})
		})

		Context("when the context is already cancelled", func() {
			It("does not start mysqldump", func() {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()

				Expect(dumper.Dump(cancelled, destinationPath)).To(MatchError(context.Canceled))
				Expect(runner.RunCallCount()).To(BeZero())
			})
		})

		Context("when the destination folder does not exist", func() {
			It("creates it", func() {
				runner.RunStub = func(_ context.Context, command database.Command) error {
					return os.WriteFile(argumentValue(command.Args, "--result-file="), []byte("x"), 0600)
				}
				nested := filepath.Join(dumpsDirectory, "nightly", "x.sql")

				Expect(dumper.Dump(ctx, nested)).To(Succeed())
				Expect(nested).To(BeAnExistingFile())
			})
		})
	})

	Describe("PostgresDumper", func() {
		var dumper database.PostgresDumper

		BeforeEach(func() {
			dumper = database.NewPostgresDumper(database.Connection{
				Driver:          "pgsql",
				Host:            "localhost",
				Port:            5432,
				Database:        "app",
				Username:        "postgres",
				Password:        "pw",
				DumpCommandPath: "/usr/lib/postgresql/16/bin",
			}, runner, fileSystem)

			runner.RunStub = func(_ context.Context, command database.Command) error {
				return os.WriteFile(argumentAfter(command.Args, "-f"), []byte("PGDMP"), 0600)
			}
		})

		It("uses the dump extension", func() {
			Expect(dumper.FileExtension()).To(Equal("dump"))
		})

		It("invokes pg_dump in custom format from the configured path", func() {
			Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())

			_, command := runner.RunArgsForCall(0)
			Expect(command.Path).To(Equal("/usr/lib/postgresql/16/bin/pg_dump"))
			Expect(command.Args).To(ContainElements("-Fc", "--no-acl", "--no-owner"))
			Expect(argumentAfter(command.Args, "-h")).To(Equal("localhost"))
			Expect(argumentAfter(command.Args, "-p")).To(Equal("5432"))
			Expect(argumentAfter(command.Args, "-U")).To(Equal("postgres"))
			Expect(command.Env).To(ConsistOf("PGPASSWORD=pw"))
			Expect(os.ReadFile(destinationPath)).To(Equal([]byte("PGDMP")))
		})
	})

	Describe("MongoDBDumper", func() {
		It("dumps the database to an archive", func() {
			dumper := database.NewMongoDBDumper(database.Connection{
				Driver:   "mongodb",
				Host:     "mongo",
				Port:     27017,
				Database: "events",
			}, runner, fileSystem)
			runner.RunStub = func(_ context.Context, command database.Command) error {
				return os.WriteFile(argumentValue(command.Args, "--archive="), []byte("archive"), 0600)
			}

			Expect(dumper.FileExtension()).To(Equal("dump"))
			Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())

			_, command := runner.RunArgsForCall(0)
			Expect(command.Path).To(Equal("mongodump"))
			Expect(command.Args).To(ContainElements("--host=mongo", "--port=27017", "--db=events"))
			Expect(command.Args).NotTo(ContainElement(HavePrefix("--username")))
		})

		Context("when credentials are configured", func() {
			var dumper database.MongoDBDumper
			var configContents []byte
			var configMode os.FileMode

			BeforeEach(func() {
				dumper = database.NewMongoDBDumper(database.Connection{
					Driver:   "mongodb",
					Host:     "mongo",
					Database: "events",
					Username: "backup",
					Password: "s3cret",
				}, runner, fileSystem)
				runner.RunStub = func(_ context.Context, command database.Command) error {
					configPath := argumentValue(command.Args, "--config=")
					info, err := os.Stat(configPath)
					if err != nil {
						return err
					}
					configMode = info.Mode().Perm()
					configContents, err = os.ReadFile(configPath)
					if err != nil {
						return err
					}
					return os.WriteFile(argumentValue(command.Args, "--archive="), []byte("archive"), 0600)
				}
			})

			It("passes the password in a private config file", func() {
				Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())

				_, command := runner.RunArgsForCall(0)
				Expect(command.Args).To(ContainElement("--username=backup"))
				Expect(command.Args).NotTo(ContainElement(ContainSubstring("s3cret")))
				Expect(string(configContents)).To(Equal("password: s3cret\n"))
				Expect(configMode).To(Equal(os.FileMode(0600)))
			})

			It("removes the config file afterwards", func() {
				Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())

				_, command := runner.RunArgsForCall(0)
				Expect(argumentValue(command.Args, "--config=")).NotTo(BeAnExistingFile())
			})

			It("removes the config file when the dump fails", func() {
				runner.RunReturns(errors.New("mongodump exited 1"))

				Expect(dumper.Dump(ctx, destinationPath)).To(MatchError("mongodump exited 1"))
				_, command := runner.RunArgsForCall(0)
				Expect(argumentValue(command.Args, "--config=")).NotTo(BeAnExistingFile())
			})
		})
	})

	Describe("SQLiteDumper", func() {
		var databaseFile string

		BeforeEach(func() {
			databaseFile = filepath.Join(GinkgoT().TempDir(), "app.sqlite")
		})

		It("copies the database file", func() {
			Expect(os.WriteFile(databaseFile, []byte("SQLite format 3"), 0600)).To(Succeed())
			dumper := database.NewSQLiteDumper(database.Connection{Driver: "sqlite", Database: databaseFile}, fileSystem)

			Expect(dumper.FileExtension()).To(Equal("sqlite"))
			Expect(dumper.Dump(ctx, destinationPath)).To(Succeed())
			Expect(os.ReadFile(destinationPath)).To(Equal([]byte("SQLite format 3")))
		})

		It("fails when the database file is missing", func() {
			dumper := database.NewSQLiteDumper(database.Connection{Driver: "sqlite", Database: databaseFile}, fileSystem)

			Expect(dumper.Dump(ctx, destinationPath)).To(MatchError(ContainSubstring("does not exist")))
			Expect(destinationPath).NotTo(BeAnExistingFile())
		})
	})

	Describe("NewDumper", func() {
		DescribeTable("picks the dumper for the driver",
			func(driver, extension string) {
				dumper, err := database.NewDumper(database.Connection{Driver: driver}, runner, fileSystem)
				Expect(err).NotTo(HaveOccurred())
				Expect(dumper.FileExtension()).To(Equal(extension))
			},
			Entry("mysql", "mysql", "sql"),
			Entry("pgsql", "pgsql", "dump"),
			Entry("postgres", "postgres", "dump"),
			Entry("sqlite", "sqlite", "sqlite"),
			Entry("mongodb", "mongodb", "dump"),
		)

		It("rejects unknown drivers", func() {
			_, err := database.NewDumper(database.Connection{Name: "legacy", Driver: "oracle"}, runner, fileSystem)
			Expect(err).To(MatchError(ContainSubstring(`connection legacy uses unsupported driver "oracle"`)))
		})
	})
})
