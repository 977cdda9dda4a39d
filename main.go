package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const usage = "Usage: infobez-lab-rsa pe pc qe qc ee ec ciphertext plaintext"

var argNames = []string{"pe", "pc", "qe", "qc", "ee", "ec", "ciphertext", "plaintext"}

var (
	ErrUsage = errors.New("usage error")

	errArgCount = errors.WithMessage(ErrUsage, "wrong number of arguments")
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// stripUnderscores removes digit-group separators as in 1_000. Each
// underscore must sit between two digits.
func stripUnderscores(s string) (string, bool) {
	sign, digits := "", s
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, digits = s[:1], s[1:]
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] != '_' {
			continue
		}
		if i == 0 || i == len(digits)-1 || !isDigit(digits[i-1]) || !isDigit(digits[i+1]) {
			return "", false
		}
	}
	return sign + strings.ReplaceAll(digits, "_", ""), true
}

func parseInt(name, s string) (*big.Int, error) {
	digits, ok := stripUnderscores(strings.TrimSpace(s))
	var n *big.Int
	if ok {
		n, ok = new(big.Int).SetString(digits, 10)
	}
	if !ok {
		return nil, errors.Wrapf(ErrUsage, "argument %s: %q is not an integer", name, s)
	}
	return n, nil
}

func parseArgs(args []string) (Params, error) {
	if len(args) != len(argNames) {
		return Params{}, errArgCount
	}

	vals := make([]*big.Int, len(args))
	for i, arg := range args {
		n, err := parseInt(argNames[i], arg)
		if err != nil {
			return Params{}, err
		}
		vals[i] = n
	}

	return Params{
		P:          EncodedParam{Exponent: vals[0], Correction: vals[1]},
		Q:          EncodedParam{Exponent: vals[2], Correction: vals[3]},
		E:          EncodedParam{Exponent: vals[4], Correction: vals[5]},
		Ciphertext: vals[6],
		Plaintext:  vals[7],
	}, nil
}

// run writes the result line to out. On a wrong argument count it writes the
// usage line instead and returns an error wrapping ErrUsage.
func run(args []string, out io.Writer) error {
	params, err := parseArgs(args)
	if errors.Is(err, errArgCount) {
		fmt.Fprintln(out, usage)
		return err
	}
	if err != nil {
		return err
	}

	res, err := Reconstruct(params)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, res)
	return err
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errArgCount):
		os.Exit(1)
	default:
		log.WithError(err).Fatal("rsa reconstruction failed")
	}
}
