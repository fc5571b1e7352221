package circuits

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

const (
	// A bn254 field element holds at most 31 bytes of raw data.
	scopeChunkBytes = 31
	// Poseidon takes at most 16 inputs, which caps hashable strings at 496 bytes.
	scopeMaxChunks = 16
)

// ErrScopeTooLong is returned when the endpoint or scope string does not fit
// into the poseidon input arity.
var ErrScopeTooLong = errors.New("scope input exceeds maximum hashable length")

// HashEndpointWithScope derives the scope value bound into the disclosure
// circuit: each string is chunked into field elements and poseidon-hashed,
// then the two digests are hashed together. The result is stable for a given
// endpoint and scope pair.
func HashEndpointWithScope(endpoint, scope string) (*big.Int, error) {
	endpointHash, err := hashString(endpoint)
	if err != nil {
		return nil, fmt.Errorf("hash endpoint: %w", err)
	}
	scopeHash, err := hashString(scope)
	if err != nil {
		return nil, fmt.Errorf("hash scope: %w", err)
	}
	return poseidon.Hash([]*big.Int{endpointHash, scopeHash})
}

func hashString(s string) (*big.Int, error) {
	raw := []byte(s)
	if len(raw) == 0 {
		return poseidon.Hash([]*big.Int{big.NewInt(0)})
	}
	if len(raw) > scopeChunkBytes*scopeMaxChunks {
		return nil, ErrScopeTooLong
	}
	chunks := make([]*big.Int, 0, (len(raw)+scopeChunkBytes-1)/scopeChunkBytes)
	for len(raw) > 0 {
		n := scopeChunkBytes
		if len(raw) < n {
			n = len(raw)
		}
		chunks = append(chunks, new(big.Int).SetBytes(raw[:n]))
		raw = raw[n:]
	}
	return poseidon.Hash(chunks)
}
