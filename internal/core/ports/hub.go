package ports

import (
	"context"

	"github.com/0xwitty/self/internal/core/domain"
)

// HubResponse is the decoded result of a successful hub call. Values holds
// one readable string per requested disclosure field, in request order. Err
// is the hub's in-band per-call error slot, distinct from a failed call.
type HubResponse struct {
	Values []string
	Valid  bool
	Err    error
}

// Hub submits assembled verification requests to the on-chain verifier. A
// returned error means the call itself failed (transport error or revert);
// it is terminal for that verification only.
type Hub interface {
	VerifyAll(ctx context.Context, req *domain.VerificationRequest) (*HubResponse, error)
}
