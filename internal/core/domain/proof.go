package domain

import (
	"errors"
	"math/big"

	"github.com/iden3/go-rapidsnark/types"

	"github.com/0xwitty/self/internal/common"
)

// ErrMalformedProof is returned when a raw proof does not carry the three
// groth16 components in their expected shapes.
var ErrMalformedProof = errors.New("malformed proof")

// Proof is a groth16 proof in the uint256 form the on-chain verifier consumes.
type Proof struct {
	A [2]*big.Int
	B [2][2]*big.Int
	C [2]*big.Int
}

// NewProofFromRaw converts the snarkjs-style string encoding produced by the
// prover into on-chain form. Only the first two coordinates of each point are
// kept; the trailing projective coordinate is dropped.
func NewProofFromRaw(raw *types.ProofData) (*Proof, error) {
	if raw == nil || len(raw.A) < 2 || len(raw.B) < 2 || len(raw.C) < 2 {
		return nil, ErrMalformedProof
	}
	for _, row := range raw.B[:2] {
		if len(row) < 2 {
			return nil, ErrMalformedProof
		}
	}

	p := &Proof{}
	a, err := common.ArrayStringToBigInt(raw.A[:2])
	if err != nil {
		return nil, errors.Join(ErrMalformedProof, err)
	}
	copy(p.A[:], a)

	for i := 0; i < 2; i++ {
		row, err := common.ArrayStringToBigInt(raw.B[i][:2])
		if err != nil {
			return nil, errors.Join(ErrMalformedProof, err)
		}
		copy(p.B[i][:], row)
	}

	c, err := common.ArrayStringToBigInt(raw.C[:2])
	if err != nil {
		return nil, errors.Join(ErrMalformedProof, err)
	}
	copy(p.C[:], c)

	return p, nil
}

// Swapped returns a copy of the proof with the columns of each B row
// exchanged. The verifier contract consumes G2 points with inverted
// coordinate order, so the swap is applied to every proof before submission.
func (p *Proof) Swapped() *Proof {
	out := &Proof{A: p.A, C: p.C}
	for i := 0; i < 2; i++ {
		out.B[i][0] = p.B[i][1]
		out.B[i][1] = p.B[i][0]
	}
	return out
}
