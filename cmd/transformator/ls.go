package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/mets"
)

var lsOpts = struct {
	recurse bool
}{}

var ls cli.Command = cli.Command{
	Name:  "ls",
	Usage: "List SIPs and summarize their preservation records",
	Description: `Locate the SIP holding each given path and print one summary line
	per SIP: its root, the intellectual entity identifier, and the
	record counts.

	With -r, walk the given directories instead and summarize every
	SIP found below them. This is useful for inspecting a batch of
	unpacked bags:

	  transformator ls -r /tmp/unpacked

	With no arguments, the path named by -s or the TRANSFORMATOR_SIP
	environment variable is used, falling back to the current working
	directory.`,
	ArgsUsage: "[ dir | path ] ...",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "recurse, r",
			Usage:       "Walk the given directories for SIPs instead of locating one root",
			Destination: &lsOpts.recurse,
		},
	},

	Action: func(c *cli.Context) error {
		return lsAction(c.Args())
	},
}

func lsAction(args []string) error {
	if len(args) == 0 {
		args = []string{mainOpts.sip}
	}

	for _, loc := range args {
		roots := []string{}
		if lsOpts.recurse {
			found, err := mets.Discover(cwd(loc))
			if err != nil {
				return err
			}
			roots = found
		} else {
			roots = append(roots, root(loc))
		}

		for _, r := range roots {
			if err := summarize(r); err != nil {
				return err
			}
		}
	}

	return nil
}

func summarize(root string) error {
	sip, err := mets.Load(root)
	if err != nil {
		return err
	}

	id := "-"
	if entities := sip.Package.Entities(); len(entities) == 1 {
		if uuid, ok := entities[0].UUID(); ok {
			id = uuid.Value
		}
	}

	files := 0
	for _, rec := range sip.Representations {
		files += len(rec.Files())
	}

	carrier := ""
	if len(sip.Package.Representations()) > 0 {
		carrier = "    carrier"
	}

	fmt.Printf("%s    %s    %d representations    %d files    %d events%s\n",
		root, id, len(sip.Representations), files, len(sip.Package.Events), carrier)

	return nil
}
