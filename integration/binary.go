package integration

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

var runTimeout = time.Minute

type Binary struct {
	path string
}

func NewBinary(path string) Binary {
	return Binary{path: path}
}

// Run executes dbb in cwd and waits for it to exit. A DBB_CONFIG inherited
// from the caller is dropped so the config lookup only sees what the test
// sets up.
func (b Binary) Run(cwd string, env []string, params ...string) *gexec.Session {
	command := exec.Command(b.path, params...)
	command.Env = withoutConfigOverride(env)
	command.Dir = cwd

	fmt.Fprintf(GinkgoWriter, "Running dbb %v in %s\n", params, cwd)
	session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
	Expect(err).ToNot(HaveOccurred())
	Eventually(session, runTimeout).Should(gexec.Exit())
	fmt.Fprintf(GinkgoWriter, "dbb exited with %d\n", session.ExitCode())

	return session
}

func withoutConfigOverride(env []string) []string {
	var filtered []string
	for _, variable := range env {
		if !strings.HasPrefix(variable, "DBB_CONFIG=") {
			filtered = append(filtered, variable)
		}
	}
	return filtered
}
