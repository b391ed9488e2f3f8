package main

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/wangao1236/pretty-ps/pkg/command"
)

const usage = `pretty-ps reformats docker ps output into an aligned, sortable table.
               It shells out to the docker CLI, so docker must be installed and on the PATH.
               Running it without a subcommand is the same as running pretty-ps ps.`

func main() {
	app := cli.NewApp()
	app.Name = "pretty-ps"
	app.Usage = usage
	app.Flags = command.PsFlags
	app.Action = command.PsAction

	app.Commands = []cli.Command{
		command.PsCommand,
	}

	app.Before = func(context *cli.Context) error {
		logrus.SetReportCaller(true)
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		logrus.SetOutput(os.Stderr)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
