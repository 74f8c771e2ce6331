package flags

import (
	"github.com/cloudfoundry/database-backup-and-archive/compressor"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// ValidateBackupFlags rejects flag combinations the backup command cannot
// honour, before any configuration is read.
func ValidateBackupFlags(c *cli.Context) error {
	if containsHelpFlag(c) {
		return nil
	}

	if err := validateBackupFlags(c); err != nil {
		return redCliError(err)
	}
	return nil
}

func validateBackupFlags(c *cli.Context) error {
	if c.Bool("compress") && c.Bool("no-compress") {
		return errors.New("--compress and --no-compress cannot be used together.")
	}

	if name := c.String("compressor"); name != "" && !compressor.IsSupported(name) {
		return errors.Errorf("--compressor must be one of %s, %s or %s.", compressor.Gzip, compressor.Zstd, compressor.GzipCommand)
	}

	if c.String("disk-folder") != "" && c.String("upload-disk") == "" {
		return errors.New("--disk-folder requires --upload-disk.")
	}

	if c.Duration("timeout") < 0 {
		return errors.New("--timeout must not be negative.")
	}

	if len(c.Args()) > 1 {
		return errors.New("at most one filename can be given.")
	}

	return nil
}

func containsHelpFlag(c *cli.Context) bool {
	for _, arg := range c.Args() {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
