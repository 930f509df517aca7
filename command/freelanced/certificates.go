// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/pem"
	"errors"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/freelanced/util"
)

// refusal to overwrite existing key material
var (
	errCertificateFileExists = errors.New("certificate file already exists")
	errKeyFileExists         = errors.New("key file already exists")
)

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return errCertificateFileExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return errKeyFileExists
	}

	org := "freelanced self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// first certificate block of a PEM file
func decodeCertificate(data []byte) ([]byte, error) {
	for {
		block, rest := pem.Decode(data)
		if nil == block {
			return nil, errors.New("no certificate found")
		}
		if "CERTIFICATE" == block.Type {
			return block.Bytes, nil
		}
		data = rest
	}
}
