package main

import (
	"os"

	"github.com/cloudfoundry/database-backup-and-archive/cli/command"
	"github.com/urfave/cli"
)

var version string

func main() {
	app := cli.NewApp()

	app.Version = version
	app.Name = "Database Backup and Archive"
	app.HelpName = "dbb"
	app.Usage = "Dump a database and archive the dump to S3 or another disk"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "Path to the config file (defaults to $DBB_CONFIG, then ./dbb.yml)",
		},
	}

	app.Commands = []cli.Command{
		command.NewBackupCommand().Cli(),
		{
			Name:  "version",
			Usage: "Print the version of dbb",
			Action: func(c *cli.Context) error {
				cli.ShowVersion(c)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
