// Copyright (c) 2017-2020 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// TLS configures the gRPC outbound to the frontend
type TLS struct {
	Enabled bool `yaml:"enabled"`

	// client certificate, set both or neither
	CertFile string `yaml:"certFile"`
	KeyFile  string `yaml:"keyFile"`

	// CaFile overrides the system roots when set
	CaFile string `yaml:"caFile"`
	// EnableHostVerification checks the frontend certificate against ServerName (or the dialed host)
	EnableHostVerification bool `yaml:"enableHostVerification"`

	ServerName string `yaml:"serverName"`
}

func (t TLS) validate() error {
	if !t.Enabled {
		return nil
	}
	if (t.CertFile == "") != (t.KeyFile == "") {
		return errors.New("tls.certFile and tls.keyFile must be set together")
	}
	return nil
}

// ToTLSConfig builds the crypto/tls config for the outbound, nil when TLS is disabled
func (t TLS) ToTLSConfig() (*tls.Config, error) {
	if !t.Enabled {
		return nil, nil
	}

	out := &tls.Config{
		InsecureSkipVerify: !t.EnableHostVerification,
		ServerName:         t.ServerName,
	}

	if t.CaFile != "" {
		pool, err := loadCertPool(t.CaFile)
		if err != nil {
			return nil, err
		}
		out.RootCAs = pool
	}

	if t.CertFile != "" && t.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(t.CertFile, t.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("loading client certificate: %w", err)
		}
		out.Certificates = append(out.Certificates, cert)
	}
	return out, nil
}

func loadCertPool(caFile string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("reading caFile: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificate found in caFile %v", caFile)
	}
	return pool, nil
}
