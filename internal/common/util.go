package common

import (
	"fmt"
	"math/big"
	"strings"
)

// ArrayStringToBigInt converts a slice of decimal or 0x-prefixed hex strings
// into big integers. It fails on the first value that cannot be parsed.
func ArrayStringToBigInt(s []string) ([]*big.Int, error) {
	o := make([]*big.Int, 0, len(s))
	for i := range s {
		si, err := StringToBigInt(s[i])
		if err != nil {
			return nil, err
		}
		o = append(o, si)
	}
	return o, nil
}

// StringToBigInt parses a decimal or 0x-prefixed hex string into a big integer.
func StringToBigInt(s string) (*big.Int, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		base = 16
		s = strings.TrimPrefix(s, "0x")
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q as base %d integer", s, base)
	}
	return n, nil
}
