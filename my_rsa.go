package main

import (
	"math/big"

	"github.com/pkg/errors"
)

var ErrInvalidPublicExponent = errors.New("public exponent is not coprime with phi(n)")

type RSAPublicKey struct {
	N *big.Int
	E *big.Int
}

type RSAPrivateKey struct {
	PublicKey RSAPublicKey
	D         *big.Int
	P         *big.Int
	Q         *big.Int
}

// NewRSAPrivateKey builds the key for the given factors and public exponent.
// p and q are trusted as supplied: they are not checked for primality,
// distinctness or sign.
func NewRSAPrivateKey(p, q, e *big.Int) (*RSAPrivateKey, error) {
	d, err := DerivePrivateExponent(e, p, q)
	if err != nil {
		return nil, err
	}

	// n = p * q
	n := new(big.Int).Mul(p, q)

	return &RSAPrivateKey{
		PublicKey: RSAPublicKey{N: n, E: new(big.Int).Set(e)},
		D:         d,
		P:         new(big.Int).Set(p),
		Q:         new(big.Int).Set(q),
	}, nil
}

// DerivePrivateExponent returns d = e^(-1) mod (p-1)(q-1).
func DerivePrivateExponent(e, p, q *big.Int) (*big.Int, error) {
	// phi(n) = (p-1)(q-1)
	p1 := new(big.Int).Sub(p, bigOne)
	q1 := new(big.Int).Sub(q, bigOne)
	phi := new(big.Int).Mul(p1, q1)

	gcd := new(big.Int).GCD(nil, nil, e, phi)
	if gcd.Cmp(bigOne) != 0 {
		return nil, errors.Wrapf(ErrInvalidPublicExponent, "gcd(%s, %s) = %s", e, phi, gcd)
	}

	d, err := ModInverse(e, phi)
	if errors.Is(err, ErrNotInvertible) {
		return nil, errors.WithMessage(ErrInvalidPublicExponent, err.Error())
	}
	if err != nil {
		return nil, errors.Wrap(err, "derive private exponent")
	}

	return d, nil
}

// Transform returns m^k mod n. It serves both directions of RSA; only the
// exponent differs. m is not required to be below n.
func Transform(m, k, n *big.Int) (*big.Int, error) {
	if n.Sign() == 0 {
		return nil, ErrZeroModulus
	}

	// Exp reduces into [0, |n|) and inverts m when k < 0.
	z := new(big.Int).Exp(m, k, n)
	if z == nil {
		return nil, errors.Wrapf(ErrNotInvertible, "%s has no inverse mod %s", m, n)
	}
	if n.Sign() < 0 && z.Sign() != 0 {
		z.Add(z, n)
	}

	return z, nil
}

func RSAEncrypt(publicKey *RSAPublicKey, message *big.Int) (*big.Int, error) {
	// c = m^e mod n
	return Transform(message, publicKey.E, publicKey.N)
}

func RSADecrypt(privateKey *RSAPrivateKey, ciphertext *big.Int) (*big.Int, error) {
	// m = c^d mod n
	return Transform(ciphertext, privateKey.D, privateKey.PublicKey.N)
}
