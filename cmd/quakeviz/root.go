package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rickgao/quakeviz/internal/version"
)

// globalFlags are available on every command.
var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML config file. Defaults apply when empty.",
		Sources: cli.EnvVars("QUAKEVIZ_CONFIG"),
	},
	&cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "Set the log level.  One of: debug, info, warn, error.",
		Sources: cli.EnvVars("LOG_LEVEL"),
	},
	&cli.BoolFlag{
		Name:  "json",
		Usage: "Output logs as JSON.  Implied when stderr is not a TTY.",
	},
}

func execute() {
	app := &cli.Command{
		Name:    "quakeviz",
		Usage:   "Charts of last week's earthquakes from the USGS feed",
		Version: version.String(),
		Flags:   globalFlags,
		Action:  runRender,
		Commands: []*cli.Command{
			renderCommand(),
			summaryCommand(),
			serveCommand(),
			versionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: fmt.Sprintf("Shows the quakeviz version (%s)", version.Version),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(cmd.Root().Writer, version.String())
			return nil
		},
	}
}
