package database_test

import (
	"context"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/database"
	orchestratorfakes "github.com/cloudfoundry/database-backup-and-archive/orchestrator/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExecCommandRunner", func() {
	var runner database.ExecCommandRunner

	BeforeEach(func() {
		runner = database.NewExecCommandRunner(new(orchestratorfakes.FakeLogger))
	})

	It("runs the command", func() {
		Expect(runner.Run(context.Background(), database.Command{Path: "true"})).To(Succeed())
	})

	It("passes the extra environment", func() {
		err := runner.Run(context.Background(), database.Command{
			Path: "sh",
			Args: []string{"-c", `test "$DBB_TEST_VALUE" = expected`},
			Env:  []string{"DBB_TEST_VALUE=expected"},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("includes stderr in the error", func() {
		err := runner.Run(context.Background(), database.Command{
			Path: "sh",
			Args: []string{"-c", "echo 'access denied' >&2; exit 2"},
		})
		Expect(err).To(MatchError(ContainSubstring("sh failed: access denied")))
	})

	It("stops the command when the context is done", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := runner.Run(ctx, database.Command{Path: "sleep", Args: []string{"10"}})
		Expect(err).To(MatchError(ContainSubstring("sleep was interrupted")))
	})
})
