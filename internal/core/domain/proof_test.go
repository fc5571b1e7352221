package domain_test

import (
	"testing"

	"github.com/iden3/go-rapidsnark/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xwitty/self/internal/core/domain"
)

func rawProof() *types.ProofData {
	return &types.ProofData{
		A: []string{"1", "2", "1"},
		B: [][]string{{"3", "4"}, {"5", "6"}, {"1", "0"}},
		C: []string{"7", "8", "1"},
	}
}

func TestNewProofFromRaw(t *testing.T) {
	p, err := domain.NewProofFromRaw(rawProof())
	require.NoError(t, err)
	assert.Equal(t, "1", p.A[0].String())
	assert.Equal(t, "2", p.A[1].String())
	assert.Equal(t, "3", p.B[0][0].String())
	assert.Equal(t, "6", p.B[1][1].String())
	assert.Equal(t, "8", p.C[1].String())
}

func TestNewProofFromRawMalformed(t *testing.T) {
	for name, raw := range map[string]*types.ProofData{
		"nil":       nil,
		"short a":   {A: []string{"1"}, B: [][]string{{"3", "4"}, {"5", "6"}}, C: []string{"7", "8"}},
		"short b":   {A: []string{"1", "2"}, B: [][]string{{"3"}, {"5", "6"}}, C: []string{"7", "8"}},
		"bad value": {A: []string{"1", "x"}, B: [][]string{{"3", "4"}, {"5", "6"}}, C: []string{"7", "8"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := domain.NewProofFromRaw(raw)
			require.ErrorIs(t, err, domain.ErrMalformedProof)
		})
	}
}

func TestProofSwapped(t *testing.T) {
	p, err := domain.NewProofFromRaw(rawProof())
	require.NoError(t, err)

	swapped := p.Swapped()
	assert.Equal(t, "4", swapped.B[0][0].String())
	assert.Equal(t, "3", swapped.B[0][1].String())
	assert.Equal(t, "6", swapped.B[1][0].String())
	assert.Equal(t, "5", swapped.B[1][1].String())

	// A and C are untouched, and the original is not mutated.
	assert.Equal(t, p.A, swapped.A)
	assert.Equal(t, p.C, swapped.C)
	assert.Equal(t, "3", p.B[0][0].String())
}
