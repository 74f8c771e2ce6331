package command

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudfoundry/database-backup-and-archive/config"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func loadConfig(flagValue string, logger boshlog.Logger) (config.Config, error) {
	cfg, err := config.Load(boshsys.NewOsFileSystem(logger), config.ResolvePath(flagValue))
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func writeStackTrace(errorWithStackTrace string) error {
	if errorWithStackTrace != "" {
		err := os.WriteFile(fmt.Sprintf("dbb-%s.err.log", time.Now().UTC().Format(time.RFC3339)), []byte(errorWithStackTrace), 0644)
		if err != nil {
			return err
		}
	}
	return nil
}

func printlnInColor(writer io.Writer, color, format string, args ...interface{}) {
	fmt.Fprintln(writer, ansi.Color(fmt.Sprintf(format, args...), color))
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
