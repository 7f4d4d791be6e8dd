// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"encoding/binary"

	cache "github.com/patrickmn/go-cache"
)

// Cache - memoise FindProgramAddress for one program
//
// results never change so entries do not expire
type Cache struct {
	programId Address
	found     *cache.Cache
}

type cached struct {
	address Address
	bump    uint8
}

// NewCache - create a cache bound to a program id
func NewCache(programId Address) *Cache {
	return &Cache{
		programId: programId,
		found:     cache.New(cache.NoExpiration, 0),
	}
}

// ProgramId - the program this cache derives for
func (c *Cache) ProgramId() Address {
	return c.programId
}

// Find - cached FindProgramAddress
func (c *Cache) Find(seeds [][]byte) (Address, uint8, error) {
	key := cacheKey(seeds)
	if item, ok := c.found.Get(key); ok {
		r := item.(cached)
		return r.address, r.bump, nil
	}

	address, bump, err := FindProgramAddress(seeds, c.programId)
	if nil != err {
		return Address{}, 0, err
	}
	c.found.Set(key, cached{address: address, bump: bump}, cache.NoExpiration)
	return address, bump, nil
}

// Count - number of cached entries
func (c *Cache) Count() int {
	return c.found.ItemCount()
}

// length prefix each seed so different splits never share a key
func cacheKey(seeds [][]byte) string {
	n := 0
	for _, s := range seeds {
		n += 2 + len(s)
	}
	key := make([]byte, 0, n)
	for _, s := range seeds {
		key = binary.BigEndian.AppendUint16(key, uint16(len(s)))
		key = append(key, s...)
	}
	return string(key)
}
