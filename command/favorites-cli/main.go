// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/favoritesd/rpc/certificate"
)

type metadata struct {
	connect     string
	fingerprint certificate.Fingerprint
	key         string
	programId   string
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	err := newApp().Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "favorites-cli"
	app.Usage = "store and read signed favorites on a favoritesd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2130",
			Usage: " favoritesd host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "fingerprint, f",
			Value: "",
			Usage: " expected SHA3-256 certificate `HEX` fingerprint",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " owner private `KEY`, base58 private key or hex seed",
			EnvVar: "FAVORITES_KEY",
		},
		cli.StringFlag{
			Name:  "program, p",
			Value: "",
			Usage: " program `ID` to sign for, default is the node's",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "address",
			Usage:     "show the favorites address of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT`, default is the key owner",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "set",
			Usage:     "create or replace the favorites of the key owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "number, n",
					Value: 0,
					Usage: " favorite `NUMBER`",
				},
				cli.StringFlag{
					Name:  "color, C",
					Value: "",
					Usage: " favorite `COLOR`",
				},
				cli.StringSliceFlag{
					Name:  "hobby, H",
					Usage: " a `HOBBY`, repeat for more",
				},
			},
			Action: runSet,
		},
		{
			Name:      "get",
			Usage:     "read the favorites of the key owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGet,
		},
		{
			Name:      "airdrop",
			Usage:     "credit lamports on a testing chain",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` to credit, default is the key owner",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 0,
					Usage: "*amount to credit `LAMPORTS`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "balance",
			Usage:     "display lamports held by an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` to query, default is the key owner",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "info",
			Usage:     "display favoritesd status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:  "version",
			Usage: "display favorites-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// global options shared by every command
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect:   c.GlobalString("connect"),
			key:       c.GlobalString("key"),
			programId: c.GlobalString("program"),
			verbose:   c.GlobalBool("verbose"),
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
		}

		if s := c.GlobalString("fingerprint"); "" != s {
			fingerprint, err := certificate.FingerprintFromHex(s)
			if nil != err {
				return fmt.Errorf("fingerprint: %q  error: %s", s, err)
			}
			m.fingerprint = fingerprint
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %q\n", m.connect)
		}

		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	return app
}
