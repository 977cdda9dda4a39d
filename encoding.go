package main

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

// Lsh takes a machine uint.
const maxShiftBits = bits.UintSize

var (
	ErrNegativeShift = errors.New("negative shift count")
	ErrShiftTooLarge = errors.New("shift count too large")
)

// EncodedParam stands for the value 2^Exponent - Correction.
type EncodedParam struct {
	Exponent   *big.Int
	Correction *big.Int
}

// Value decodes the parameter. The result is not validated: it may be
// composite, zero or negative if the correction is large enough.
func (ep EncodedParam) Value() (*big.Int, error) {
	if ep.Exponent.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegativeShift, "exponent %s", ep.Exponent)
	}
	if ep.Exponent.BitLen() > maxShiftBits {
		return nil, errors.Wrapf(ErrShiftTooLarge, "exponent %s", ep.Exponent)
	}

	v := new(big.Int).Lsh(bigOne, uint(ep.Exponent.Uint64()))
	return v.Sub(v, ep.Correction), nil
}

// Params holds everything one run needs.
type Params struct {
	P, Q, E    EncodedParam
	Ciphertext *big.Int
	Plaintext  *big.Int
}

type Result struct {
	Decrypted *big.Int
	Encrypted *big.Int
}

func (r *Result) String() string {
	return fmt.Sprintf("%s, %s", r.Decrypted, r.Encrypted)
}

func decodeParams(params Params) (p, q, e *big.Int, err error) {
	if p, err = params.P.Value(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "decode p")
	}
	if q, err = params.Q.Value(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "decode q")
	}
	if e, err = params.E.Value(); err != nil {
		return nil, nil, nil, errors.Wrap(err, "decode e")
	}
	return p, q, e, nil
}

// Reconstruct rebuilds the key from the encoded parameters, decrypts the
// ciphertext with d and encrypts the plaintext with e.
func Reconstruct(params Params) (*Result, error) {
	p, q, e, err := decodeParams(params)
	if err != nil {
		return nil, err
	}

	key, err := NewRSAPrivateKey(p, q, e)
	if err != nil {
		return nil, err
	}

	decrypted, err := RSADecrypt(key, params.Ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt")
	}

	encrypted, err := RSAEncrypt(&key.PublicKey, params.Plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt")
	}

	return &Result{Decrypted: decrypted, Encrypted: encrypted}, nil
}
