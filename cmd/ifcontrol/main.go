package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatalln(err)
	}
}

func newApp() *cli.Command {
	app := new(cli.Command)

	app.Name = "ifcontrol"
	app.Usage = "query and change the administrative state of network interfaces"
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable debug/verbose mode",
		},
		&cli.StringFlag{
			Name:    "netns",
			Sources: cli.EnvVars("IFCONTROL_NETNS"),
			Usage:   "path to a network namespace file (Linux only)",
		},
	}

	app.Commands = []*cli.Command{
		&cli.Command{
			Name:      "status",
			Usage:     "print whether the interface is up and running",
			ArgsUsage: "IFNAME",
			Action:    runStatus,
		},
		&cli.Command{
			Name:      "flags",
			Usage:     "print the interface flags",
			ArgsUsage: "IFNAME",
			Action:    runFlags,
		},
		&cli.Command{
			Name:      "up",
			Usage:     "bring the interface up",
			ArgsUsage: "IFNAME",
			Action:    runUp,
		},
		&cli.Command{
			Name:      "down",
			Usage:     "bring the interface down",
			ArgsUsage: "IFNAME",
			Action:    runDown,
		},
		&cli.Command{
			Name:   "addrs",
			Usage:  "list the addresses of every interface",
			Action: runAddrs,
		},
		&cli.Command{
			Name:  "version",
			Usage: "print the version information",
			Action: func(ctx context.Context, c *cli.Command) error {
				fmt.Fprintf(c.Root().Writer, "v%s, (built %s)\n", version, runtime.Version())
				return nil
			},
		},
	}

	return app
}
