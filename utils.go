package main

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	bigOne = big.NewInt(1)

	ErrNotInvertible = errors.New("modular inverse does not exist")
	ErrZeroModulus   = errors.New("modulus is zero")
)

// floorDivMod returns q = floor(a / b) and r = a - q*b, so r has the sign of b.
// b must be non-zero.
func floorDivMod(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		q.Sub(q, bigOne)
		r.Add(r, b)
	}
	return q, r
}

// floorMod returns a mod m with the result taking the sign of m.
func floorMod(a, m *big.Int) *big.Int {
	_, r := floorDivMod(a, m)
	return r
}

// ExtendedGCD returns g, x, y such that a*x + b*y = g, where |g| = gcd(a, b).
func ExtendedGCD(a, b *big.Int) (*big.Int, *big.Int, *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldX, x := big.NewInt(1), big.NewInt(0)
	oldY, y := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q, rem := floorDivMod(oldR, r)
		oldR, r = r, rem

		// x_{i+1} = x_{i-1} - q*x_i
		nextX := new(big.Int).Mul(q, x)
		oldX, x = x, nextX.Sub(oldX, nextX)

		nextY := new(big.Int).Mul(q, y)
		oldY, y = y, nextY.Sub(oldY, nextY)
	}

	return oldR, oldX, oldY
}

// ModInverse returns x in [0, m) with a*x = 1 (mod m).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	gcd, x, _ := ExtendedGCD(a, m)
	if gcd.Cmp(bigOne) != 0 {
		return nil, errors.Wrapf(ErrNotInvertible, "gcd(%s, %s) = %s", a, m, gcd)
	}
	if m.Sign() == 0 {
		return nil, ErrZeroModulus
	}

	return floorMod(x, m), nil
}
