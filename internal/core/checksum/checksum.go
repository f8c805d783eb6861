// Package checksum implements the mod 11 account number check
//
//	account:  d1 d2 d3 d4 d5 d6 d7 d8 d9
//	weight:    9  8  7  6  5  4  3  2  1
//
// A number is valid when the weighted sum is divisible by 11.
package checksum

import (
	"bankocr/internal/core/decoder"
	perr "bankocr/internal/platform/errors"
)

// Modulus is the divisor of the weighted sum
const Modulus = 11

// Sum returns the weighted digit sum
func Sum(digits []int) (int, error) {
	if len(digits) != decoder.Positions {
		return 0, perr.WithField(
			perr.Validationf("checksum needs %d digits, got %d", decoder.Positions, len(digits)), "digits")
	}
	total := 0
	for i, d := range digits {
		if d < 0 || d > 9 {
			return 0, perr.WithField(
				perr.Validationf("position %d is not a resolved digit (%d)", i, d), "digits")
		}
		total += d * (decoder.Positions - i)
	}
	return total, nil
}

// Valid reports whether digits pass the check
// anything other than nine resolved digits is a validation error
func Valid(digits []int) (bool, error) {
	s, err := Sum(digits)
	if err != nil {
		return false, err
	}
	return s%Modulus == 0, nil
}

// ValidNumber is Valid over a decoded reading; unknown positions are a validation error
func ValidNumber(n decoder.Number) (bool, error) {
	ds, ok := n.Digits()
	if !ok {
		return false, perr.WithField(
			perr.Validationf("reading %s has %d unknown positions", n, n.Unknowns()), "digits")
	}
	return Valid(ds)
}

// ValidString checks a nine character digit string
func ValidString(account string) (bool, error) {
	if len(account) != decoder.Positions {
		return false, perr.WithField(
			perr.Validationf("account %q has %d characters, want %d", account, len(account), decoder.Positions), "account")
	}
	ds := make([]int, len(account))
	for i := 0; i < len(account); i++ {
		ds[i] = int(account[i]) - '0'
	}
	return Valid(ds)
}
