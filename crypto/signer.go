// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto declares the Signer/Verifier capability boundary (§6) and
// ships one default, secp256k1-backed implementation. The engine itself
// depends only on these two small interfaces — never on a concrete key
// provider — the same shape as the teacher's vms/platformvm/warp.Signer
// capability (warp messages are signed and verified behind an interface,
// never a concrete BLS key type, at the engine's call sites).
package crypto

import (
	"crypto/ecdsa"
	"errors"

	lcrypto "github.com/luxfi/crypto"

	"github.com/luxfi/quorum/types"
)

// ErrRecoverFailed is returned when a signature does not recover to a
// valid public key.
var ErrRecoverFailed = errors.New("crypto: signature recovery failed")

// Signer produces a recoverable signature over a 32-byte digest and
// reports the address that verifies against it.
type Signer interface {
	Address() types.Address
	Sign(digest types.Hash) (types.Signature, error)
}

// Verifier recovers the signing address from a digest and signature.
type Verifier interface {
	Recover(digest types.Hash, sig types.Signature) (types.Address, error)
}

// secp256k1Signer is the default Signer/Verifier, backed by the same
// recoverable-ECDSA primitives the rest of the retrieval pack uses for
// address-bound signatures.
type secp256k1Signer struct {
	priv *ecdsa.PrivateKey
	addr types.Address
}

// NewSigner wraps a secp256k1 private key as a Signer.
func NewSigner(priv *ecdsa.PrivateKey) Signer {
	return &secp256k1Signer{
		priv: priv,
		addr: addressFromPublicKey(&priv.PublicKey),
	}
}

// GenerateSigner creates a fresh signer, convenient for tests and example
// wiring; production callers supply their own key material via NewSigner.
func GenerateSigner() (Signer, error) {
	priv, err := lcrypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return NewSigner(priv), nil
}

func (s *secp256k1Signer) Address() types.Address {
	return s.addr
}

func (s *secp256k1Signer) Sign(digest types.Hash) (types.Signature, error) {
	sig, err := lcrypto.Sign(digest[:], s.priv)
	if err != nil {
		return nil, err
	}
	return types.Signature(sig), nil
}

// DefaultVerifier recovers addresses from secp256k1 recoverable
// signatures, matching secp256k1Signer.
type DefaultVerifier struct{}

func (DefaultVerifier) Recover(digest types.Hash, sig types.Signature) (types.Address, error) {
	pub, err := lcrypto.SigToPub(digest[:], sig)
	if err != nil {
		return types.Address{}, ErrRecoverFailed
	}
	return addressFromPublicKey(pub), nil
}

func addressFromPublicKey(pub *ecdsa.PublicKey) types.Address {
	raw := lcrypto.FromECDSAPub(pub)
	digest := lcrypto.Keccak256(raw[1:])
	var addr types.Address
	copy(addr[:], digest[len(digest)-20:])
	return addr
}
