package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/iden3/go-rapidsnark/types"

	"github.com/0xwitty/self/internal/circuits"
	"github.com/0xwitty/self/internal/common"
	"github.com/0xwitty/self/internal/core/domain"
	"github.com/0xwitty/self/internal/core/ports"
	"github.com/0xwitty/self/internal/log"
)

// defaultAttestationID tags the electronic passport credential type.
const defaultAttestationID = 1

// Verification orchestrates identity attestation checks: it assembles a hub
// submission from a proof and its public signals, reads fresh registry state,
// submits the request and interprets the result.
//
// Policy setters may only be used before the first Verify call; Verify seals
// the policy and every call from then on works on an immutable snapshot, so
// concurrent Verify calls are safe.
type Verification struct {
	scope         *big.Int
	attestationID int
	userIDType    domain.UserIDType

	registry ports.Registry
	hub      ports.Hub

	mu     sync.Mutex
	sealed bool
	policy policy
}

// NewVerification builds an orchestrator bound to the given endpoint and
// scope. The scope hash is computed once here and is immutable afterwards.
func NewVerification(endpoint, scope string, userIDType domain.UserIDType, registry ports.Registry, hub ports.Hub) (*Verification, error) {
	if registry == nil || hub == nil {
		return nil, fmt.Errorf("%w: registry and hub are required", ErrInvalidConfiguration)
	}
	hashed, err := circuits.HashEndpointWithScope(endpoint, scope)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfiguration, err)
	}
	return &Verification{
		scope:         hashed,
		attestationID: defaultAttestationID,
		userIDType:    userIDType,
		registry:      registry,
		hub:           hub,
	}, nil
}

// Verify runs one verification transaction: registry read, hub call,
// validation. It returns an error only when the request cannot be assembled;
// a failed hub call and every soft validation failure are reported inside
// the returned outcome.
func (v *Verification) Verify(ctx context.Context, zkp *types.ZKProof) (*domain.VerificationOutcome, error) {
	if zkp == nil {
		return nil, domain.ErrMalformedProof
	}
	proof, err := domain.NewProofFromRaw(zkp.Proof)
	if err != nil {
		return nil, err
	}
	if len(zkp.PubSignals) != circuits.PubSignalCount {
		return nil, fmt.Errorf("%w: got %d signals, want %d",
			ErrMalformedSignals, len(zkp.PubSignals), circuits.PubSignalCount)
	}
	signals, err := common.ArrayStringToBigInt(zkp.PubSignals)
	if err != nil {
		return nil, errors.Join(ErrMalformedSignals, err)
	}

	p := v.sealPolicy()

	req, err := v.buildRequest(ctx, p, proof, signals)
	if err != nil {
		return nil, err
	}

	resp, callErr := v.hub.VerifyAll(ctx, req)
	if callErr != nil {
		log.Warn(ctx, "hub call failed", "err", callErr.Error())
	}

	return v.buildOutcome(p, zkp.PubSignals[circuits.AttestationIDIndex], req, resp, callErr), nil
}

// sealPolicy marks the policy immutable and returns a private copy for the
// current call.
func (v *Verification) sealPolicy() policy {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sealed = true
	return v.policy.snapshot()
}
