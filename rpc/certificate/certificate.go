// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/favoritesd/fault"
	"github.com/bitmark-inc/logger"
)

// Fingerprint - SHA3-256 of a DER encoded certificate
type Fingerprint [32]byte

// String - lower case hex
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FingerprintFromHex - parse the hex form printed by the daemon at startup
func FingerprintFromHex(s string) (Fingerprint, error) {
	var f Fingerprint
	b, err := hex.DecodeString(s)
	if nil != err {
		return f, err
	}
	if len(f) != len(b) {
		return f, fault.ErrInvalidKeyLength
	}
	copy(f[:], b)
	return f, nil
}

// Load - read PEM files and build the server TLS configuration
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, Fingerprint, error) {
	certificate, err := os.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s certificate: %q  error: %s", name, certificateFileName, err)
		return nil, Fingerprint{}, err
	}
	key, err := os.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s private key: %q  error: %s", name, keyFileName, err)
		return nil, Fingerprint{}, err
	}
	return Get(log, name, string(certificate), string(key))
}

// Get - verify PEM encoded certificate and key and return the TLS configuration
func Get(log *logger.L, name string, certificate string, key string) (*tls.Config, Fingerprint, error) {
	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, Fingerprint{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	return tlsConfiguration, Compute(keyPair.Certificate[0]), nil
}

// Compute - fingerprint of a DER encoded certificate
//
// openssl x509 -outform DER -in favoritesd-local-rpc.crt | sha3sum -a 256
func Compute(der []byte) Fingerprint {
	return sha3.Sum256(der)
}

// ClientConfig - TLS configuration for a client that pins the server
// certificate by fingerprint, a zero fingerprint accepts any certificate
func ClientConfig(expected Fingerprint) *tls.Config {
	tlsConfiguration := &tls.Config{
		InsecureSkipVerify: true,
	}
	if (Fingerprint{}) == expected {
		return tlsConfiguration
	}
	tlsConfiguration.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		if 0 == len(rawCerts) || Compute(rawCerts[0]) != expected {
			return fault.ErrCertificateMismatch
		}
		return nil
	}
	return tlsConfiguration
}
