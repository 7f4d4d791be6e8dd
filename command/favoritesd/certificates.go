// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/favoritesd/rpc/certificate"
	"github.com/bitmark-inc/favoritesd/util"
)

const certificateValidity = 10 * 365 * 24 * time.Hour

// create a self-signed certificate and return its fingerprint
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) (certificate.Fingerprint, error) {

	if util.EnsureFileExists(certificateFileName) {
		return certificate.Fingerprint{}, fault.ErrCertificateFileAlreadyExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return certificate.Fingerprint{}, fault.ErrKeyFileAlreadyExists
	}

	org := "favoritesd self signed cert for: " + name
	validUntil := time.Now().Add(certificateValidity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return certificate.Fingerprint{}, err
	}

	keyPair, err := tls.X509KeyPair(cert, key)
	if nil != err {
		return certificate.Fingerprint{}, err
	}

	if err = os.WriteFile(certificateFileName, cert, 0666); err != nil {
		return certificate.Fingerprint{}, err
	}

	if err = os.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return certificate.Fingerprint{}, err
	}

	return certificate.Compute(keyPair.Certificate[0]), nil
}
