// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/favoritesd/account"
	"github.com/bitmark-inc/favoritesd/command/favorites-cli/rpccalls"
)

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner *account.Account
	if s := c.String("owner"); "" != s {
		a, err := account.AccountFromBase58(s)
		if nil != err {
			return err
		}
		owner = a
	} else {
		keyPair, err := parseKey(m.key)
		if nil != err {
			return err
		}
		owner = keyPair.Account()
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Address(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runSet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := parseKey(m.key)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := programId(m, client)
	if nil != err {
		return err
	}

	response, err := client.SetFavorites(&rpccalls.SetData{
		Owner:     keyPair,
		ProgramId: id,
		Number:    c.Uint64("number"),
		Color:     c.String("color"),
		Hobbies:   c.StringSlice("hobby"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyPair, err := parseKey(m.key)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	id, err := programId(m, client)
	if nil != err {
		return err
	}

	response, err := client.GetFavorites(keyPair, id)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
