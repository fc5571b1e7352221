package ports

import (
	"context"
	"math/big"
)

// Registry reads the on-chain identity commitment state. Both calls must
// observe the same ledger state within one verification.
type Registry interface {
	// CurrentMerkleRoot returns the latest identity commitment merkle root.
	CurrentMerkleRoot(ctx context.Context) (*big.Int, error)
	// RootTimestamp returns the timestamp at which the given root was set.
	RootTimestamp(ctx context.Context, root *big.Int) (*big.Int, error)
}
