// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/rpc/node"
)

// GetInfo - request status from favoritesd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return &reply, nil
}

// GetBalance - lamports held by an address
func (client *Client) GetBalance(address derivation.Address) (*node.BalanceReply, error) {
	arguments := node.BalanceArguments{
		Address: address,
	}

	client.printJson("Balance Request", arguments)

	var reply node.BalanceReply
	if err := client.client.Call("Node.Balance", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return &reply, nil
}

// Airdrop - credit lamports on a testing chain
func (client *Client) Airdrop(address derivation.Address, lamports uint64) (*node.AirdropReply, error) {
	arguments := node.AirdropArguments{
		Address:  address,
		Lamports: lamports,
	}

	client.printJson("Airdrop Request", arguments)

	var reply node.AirdropReply
	if err := client.client.Call("Node.Airdrop", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Airdrop Reply", reply)

	return &reply, nil
}
