package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	transformator "github.com/viaacode/sipin-meemoo-sip-2-transformator"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/internal/safeio"
	"github.com/viaacode/sipin-meemoo-sip-2-transformator/prov"
)

var transformOpts = struct {
	output string
	pretty bool
}{}

var transform cli.Command = cli.Command{
	Name:  "transform",
	Usage: "Resolve the preservation records of a SIP into one provenance graph",
	Description: `Given the path of an unpacked SIP (or of anything inside one), parse
	its METS manifests and PREMIS preservation records, resolve the
	identifier references between them, and print the resulting graph
	as JSON, one document per SIP.

	For example, transforming a freshly unpacked bag:

	  transformator transform /tmp/unpacked/my_sip

	With no arguments, the SIP named by -s or the TRANSFORMATOR_SIP
	environment variable is transformed, falling back to the SIP
	holding the current working directory.`,
	ArgsUsage: "[ path ] ...",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "Write the graph to a file instead of stdout",
			Destination: &transformOpts.output,
		},
		cli.BoolFlag{
			Name:        "pretty",
			Usage:       "Indent the JSON output",
			Destination: &transformOpts.pretty,
		},
	},

	Action: func(c *cli.Context) error {
		return transformAction(c.Args())
	},
}

func transformAction(args []string) error {
	if len(args) == 0 {
		args = []string{root(mainOpts.sip)}
	}

	var buf bytes.Buffer
	for _, loc := range args {
		graph, err := transformator.TransformPath(loc)
		if err != nil {
			return errors.Wrapf(err, "could not transform %s", loc)
		}

		if err := encode(&buf, graph); err != nil {
			return err
		}
	}

	if transformOpts.output == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	return safeio.WriteFile(transformOpts.output, buf.Bytes())
}

func encode(w io.Writer, graph *prov.SIP) error {
	if !transformOpts.pretty {
		return graph.Serialize(w)
	}

	out, err := json.MarshalIndent(graph, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode provenance graph")
	}
	out = append(out, '\n')

	_, err = w.Write(out)
	return err
}
