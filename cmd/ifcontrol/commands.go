package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/SyNdicateFoundation/ifcontrol"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func newController(c *cli.Command) (*ifcontrol.Controller, error) {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	opts := []ifcontrol.Option{
		ifcontrol.WithLogger(log.StandardLogger()),
	}

	if p := c.String("netns"); p != "" {
		opts = append(opts, ifcontrol.WithNamespacePath(p))
	}

	return ifcontrol.NewController(opts...)
}

func ifname(c *cli.Command) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("%s: exactly one interface name is required", c.Name)
	}
	return c.Args().First(), nil
}

// explain adds a hint for the error kinds a user can act on.
func explain(name string, err error) error {
	switch ifcontrol.KindOf(err) {
	case ifcontrol.KindInterfaceNotFound:
		return fmt.Errorf("no such interface: %s", name)
	case ifcontrol.KindInvalidName:
		return fmt.Errorf("bad interface name %q: %w", name, err)
	}

	if errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES) {
		return fmt.Errorf("%w (are you root?)", err)
	}

	return err
}

func withController(c *cli.Command, fn func(ctl *ifcontrol.Controller, name string) error) error {
	name, err := ifname(c)
	if err != nil {
		return err
	}

	ctl, err := newController(c)
	if err != nil {
		return err
	}
	defer ctl.Close()

	if err := fn(ctl, name); err != nil {
		return explain(name, err)
	}

	return nil
}

func runStatus(_ context.Context, c *cli.Command) error {
	return withController(c, func(ctl *ifcontrol.Controller, name string) error {
		ok, err := ctl.IsUp(name)
		if err != nil {
			return err
		}

		state := ifcontrol.StatusDown
		if ok {
			state = ifcontrol.StatusUp
		}

		fmt.Fprintf(c.Root().Writer, "%s: %s\n", name, state)

		return nil
	})
}

func runFlags(_ context.Context, c *cli.Command) error {
	return withController(c, func(ctl *ifcontrol.Controller, name string) error {
		flags, err := ctl.Flags(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.Root().Writer, "%s: flags=%#x<%s>\n", name, uint32(flags), flags)

		return nil
	})
}

func runUp(_ context.Context, c *cli.Command) error {
	return withController(c, func(ctl *ifcontrol.Controller, name string) error {
		log.Debugf("bringing interface %s up", name)
		return ctl.Up(name)
	})
}

func runDown(_ context.Context, c *cli.Command) error {
	return withController(c, func(ctl *ifcontrol.Controller, name string) error {
		log.Debugf("bringing interface %s down", name)
		return ctl.Down(name)
	})
}

func runAddrs(_ context.Context, c *cli.Command) error {
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	if c.IsSet("netns") {
		log.Warn("--netns is ignored by addrs")
	}

	it, err := ifcontrol.GetAllAddresses()
	if err != nil {
		return err
	}

	return printAddresses(c.Root().Writer, it)
}

func printAddresses(w io.Writer, it *ifcontrol.AddressIterator) error {
	for a := range it.All() {
		var err error

		switch {
		case a.IP != nil:
			ones, _ := a.Netmask.Size()
			_, err = fmt.Fprintf(w, "%-15s %-6s %s/%d\n", a.Name, familyName(a.Family), a.IP, ones)
		case a.HardwareAddr != nil:
			_, err = fmt.Fprintf(w, "%-15s %-6s %s\n", a.Name, familyName(a.Family), a.HardwareAddr)
		default:
			_, err = fmt.Fprintf(w, "%-15s %-6s\n", a.Name, familyName(a.Family))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func familyName(family int) string {
	switch family {
	case syscall.AF_INET:
		return "inet"
	case syscall.AF_INET6:
		return "inet6"
	}
	return "link"
}
