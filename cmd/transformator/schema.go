package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/prov"
)

var schema cli.Command = cli.Command{
	Name:  "schema",
	Usage: "Print the JSON schema of the provenance graph",
	Description: `Print the schema of the documents the transform command produces.
	Downstream services validate against this schema before ingesting
	a graph.`,
	Action: func(c *cli.Context) error {
		return schemaAction()
	},
}

func schemaAction() error {
	out, err := json.MarshalIndent(jsonschema.Reflect(&prov.SIP{}), "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode schema")
	}

	fmt.Println(string(out))
	return nil
}
