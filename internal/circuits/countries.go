package circuits

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	// MaxForbiddenCountries is the capacity of the forbidden country list the
	// disclosure circuit was compiled with.
	MaxForbiddenCountries = 40

	countryCodeLen = 3
	// Each packed limb carries 10 codes (30 bytes), staying under the bn254
	// field element size.
	countriesPerLimb = 10
	limbBytes        = countryCodeLen * countriesPerLimb
)

// Country list packing errors.
var (
	ErrTooManyCountries = errors.New("forbidden country list exceeds circuit capacity")
	ErrInvalidCountry   = errors.New("country code must be three uppercase letters")
)

// PackForbiddenCountries packs an ordered list of 3-letter country codes into
// the four field elements the verification hub expects. The encoding is
// deterministic and order preserving: codes are concatenated byte-wise and the
// resulting buffer is split big-endian across the limbs.
func PackForbiddenCountries(codes []string) ([ForbiddenCountriesPackedLen]*big.Int, error) {
	var packed [ForbiddenCountriesPackedLen]*big.Int
	if len(codes) > MaxForbiddenCountries {
		return packed, ErrTooManyCountries
	}

	buf := make([]byte, MaxForbiddenCountries*countryCodeLen)
	for i, code := range codes {
		if !validCountryCode(code) {
			return packed, fmt.Errorf("%w: %q", ErrInvalidCountry, code)
		}
		copy(buf[i*countryCodeLen:], code)
	}

	for i := 0; i < ForbiddenCountriesPackedLen; i++ {
		packed[i] = new(big.Int).SetBytes(buf[i*limbBytes : (i+1)*limbBytes])
	}
	return packed, nil
}

// UnpackForbiddenCountries reverses PackForbiddenCountries, stopping at the
// first empty slot. Limbs wider than the 30-byte window never come out of
// PackForbiddenCountries and are skipped.
func UnpackForbiddenCountries(packed [ForbiddenCountriesPackedLen]*big.Int) []string {
	buf := make([]byte, MaxForbiddenCountries*countryCodeLen)
	for i, limb := range packed {
		if limb == nil || limb.BitLen() > limbBytes*8 {
			continue
		}
		limb.FillBytes(buf[i*limbBytes : (i+1)*limbBytes])
	}

	codes := make([]string, 0, MaxForbiddenCountries)
	for i := 0; i < MaxForbiddenCountries; i++ {
		code := buf[i*countryCodeLen : (i+1)*countryCodeLen]
		if code[0] == 0 {
			break
		}
		codes = append(codes, string(code))
	}
	return codes
}

func validCountryCode(code string) bool {
	if len(code) != countryCodeLen {
		return false
	}
	for i := 0; i < countryCodeLen; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
