// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/favoritesd/account"
	"github.com/bitmark-inc/favoritesd/derivation"
	"github.com/bitmark-inc/favoritesd/favorites"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/keypair"
	rpcfavorites "github.com/bitmark-inc/favoritesd/rpc/favorites"
)

// SetData - values to store for the key pair owner
type SetData struct {
	Owner     *keypair.KeyPair
	ProgramId derivation.Address
	Number    uint64
	Color     string
	Hobbies   []string
}

// SetFavorites - sign and submit a set request
func (client *Client) SetFavorites(data *SetData) (*rpcfavorites.SetReply, error) {
	if nil == data.Owner {
		return nil, fault.ErrMissingOwner
	}

	hobbies := data.Hobbies
	if 0 == len(hobbies) {
		hobbies = nil
	}

	request := favorites.SetFavorites{
		Owner:     data.Owner.Account(),
		Timestamp: uint64(time.Now().Unix()),
		Number:    data.Number,
		Color:     data.Color,
		Hobbies:   hobbies,
	}
	request.Sign(data.ProgramId, data.Owner)

	client.printJson("Set Request", request)

	var reply rpcfavorites.SetReply
	if err := client.client.Call("Favorites.Set", &request, &reply); err != nil {
		return nil, err
	}

	client.printJson("Set Reply", reply)

	return &reply, nil
}

// GetFavorites - sign and submit a get request
func (client *Client) GetFavorites(owner *keypair.KeyPair, programId derivation.Address) (*rpcfavorites.GetReply, error) {
	if nil == owner {
		return nil, fault.ErrMissingOwner
	}

	request := favorites.GetFavorites{
		Owner: owner.Account(),
	}
	request.Sign(programId, owner)

	client.printJson("Get Request", request)

	var reply rpcfavorites.GetReply
	if err := client.client.Call("Favorites.Get", &request, &reply); err != nil {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return &reply, nil
}

// Address - derived record address of any owner
func (client *Client) Address(owner *account.Account) (*rpcfavorites.AddressReply, error) {
	if nil == owner {
		return nil, fault.ErrMissingOwner
	}

	arguments := rpcfavorites.AddressArguments{
		Owner: owner,
	}

	client.printJson("Address Request", arguments)

	var reply rpcfavorites.AddressReply
	if err := client.client.Call("Favorites.Address", &arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Address Reply", reply)

	return &reply, nil
}
