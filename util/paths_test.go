// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/favoritesd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative path not joined")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute path changed")
	assert.Equal(t, "/data/x", util.EnsureAbsolute("/data", "./y/../x"), "path not cleaned")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("favorites.leveldb"), "plain name rejected")
	assert.False(t, util.IsPlainName("data/favorites.leveldb"), "path accepted")
	assert.False(t, util.IsPlainName(""), "blank accepted")
}

func TestEnsureFileExists(t *testing.T) {
	assert.True(t, util.EnsureFileExists("paths.go"), "source file not found")
	assert.False(t, util.EnsureFileExists("no-such-file.txt"), "missing file found")
}
