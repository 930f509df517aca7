// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io/ioutil"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/freelanced/rpc/certificate"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// self signed PEM certificate and key
func generate(t *testing.T) ([]byte, []byte) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "freelanced-test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if nil != err {
		t.Fatalf("create certificate error: %s", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if nil != err {
		t.Fatalf("marshal key error: %s", err)
	}
	certificatePEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certificatePEM, keyPEM
}

func TestGet(t *testing.T) {
	cer, key := generate(t)

	tlsConfig, fingerprint, err := certificate.Get(logger.New("test"), "test", cer, key)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair(cer, key)
	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestLoad(t *testing.T) {
	cer, key := generate(t)

	certificateFile := filepath.Join(testingDirName, "rpc.crt")
	keyFile := filepath.Join(testingDirName, "rpc.key")
	assert.Nil(t, ioutil.WriteFile(certificateFile, cer, 0600), "write certificate")
	assert.Nil(t, ioutil.WriteFile(keyFile, key, 0600), "write key")

	tlsConfig, _, err := certificate.Load(logger.New("test"), "test", certificateFile, keyFile)
	assert.Nil(t, err, "wrong Load")
	assert.Equal(t, 1, len(tlsConfig.Certificates), "certificates")

	_, _, err = certificate.Load(logger.New("test"), "test", filepath.Join(testingDirName, "missing.crt"), keyFile)
	assert.NotNil(t, err, "missing file")
}

func TestGetMismatch(t *testing.T) {
	cer, _ := generate(t)
	_, other := generate(t)

	_, _, err := certificate.Get(logger.New("test"), "test", cer, other)
	assert.NotNil(t, err, "mismatched key")
}
