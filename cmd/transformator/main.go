package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/viaacode/sipin-meemoo-sip-2-transformator/mets"
)

var mainOpts = struct {
	sip string
}{}

func main() {
	app := cli.NewApp()
	app.Name = "transformator"
	app.Usage = "Transform unpacked meemoo SIPs into normalized provenance graphs"
	app.Version = "2.1.0"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		transform,
		ls,
		schema,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "sip, s",
			Usage:       "Path of (or within) an unpacked SIP",
			EnvVar:      "TRANSFORMATOR_SIP",
			Destination: &mainOpts.sip,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// cwd returns dir, or the working directory when dir is empty.
func cwd(dir string) string {
	if dir == "" {
		pwd, err := os.Getwd()
		if err != nil {
			log.Fatalf("could not get pwd %s", err)
		}
		dir = pwd
	}

	return dir
}

// root locates the SIP root holding dir, the working directory by
// default.
func root(dir string) string {
	dir, err := mets.LocateRoot(cwd(dir))
	if err != nil {
		log.Fatalf("error locating SIP root %s", err)
	}

	return dir
}
