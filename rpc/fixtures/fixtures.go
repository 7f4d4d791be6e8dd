// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - start a file logger that only records critical messages
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

var (
	once        sync.Once
	certificate []byte
	key         []byte
)

func generate() {
	var err error
	certificate, key, err = certgen.NewTLSCertPair("favoritesd test", time.Now().Add(24*time.Hour), false, nil)
	if nil != err {
		panic(err)
	}
}

// Certificate - PEM encoded self signed test certificate
func Certificate() string {
	once.Do(generate)
	return string(certificate)
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	once.Do(generate)
	return string(key)
}

// WriteCertificate - store the test certificate and key in a directory
// and return the two file names
func WriteCertificate(directory string) (string, string) {
	once.Do(generate)

	certificateFile := filepath.Join(directory, "rpc.crt")
	keyFile := filepath.Join(directory, "rpc.key")
	if err := os.WriteFile(certificateFile, certificate, 0600); nil != err {
		panic(err)
	}
	if err := os.WriteFile(keyFile, key, 0600); nil != err {
		panic(err)
	}
	return certificateFile, keyFile
}
