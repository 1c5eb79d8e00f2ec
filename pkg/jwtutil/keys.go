package jwtutil

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// LoadRSAPublicKeyFromPEM reads the auth service's signing key from disk.
func LoadRSAPublicKeyFromPEM(path string) (*rsa.PublicKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	return ParseRSAPublicKeyFromPEM(b)
}

// ParseRSAPublicKeyFromPEM accepts PKIX ("PUBLIC KEY") and PKCS#1
// ("RSA PUBLIC KEY") encodings.
func ParseRSAPublicKeyFromPEM(b []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(b)
	if block == nil {
		return nil, errors.New("public key: no PEM block")
	}

	switch block.Type {
	case "RSA PUBLIC KEY":
		return x509.ParsePKCS1PublicKey(block.Bytes)
	case "PUBLIC KEY":
		key, err := x509.ParsePKIXPublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("public key: %w", err)
		}
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("public key: want RSA, got %T", key)
		}
		return rsaKey, nil
	default:
		return nil, fmt.Errorf("public key: unsupported PEM type %q", block.Type)
	}
}
