package gateways

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// registryABI is the read surface of the identity registry contract.
const registryABI = `[
  {"inputs":[],"name":"getIdentityCommitmentMerkleRoot","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[{"internalType":"uint256","name":"root","type":"uint256"}],"name":"rootTimestamps","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

// IdentityRegistry reads commitment state from the on-chain identity
// registry. It implements ports.Registry.
type IdentityRegistry struct {
	contract *bind.BoundContract
}

// NewIdentityRegistry binds the registry contract at the given address.
func NewIdentityRegistry(address ethCommon.Address, backend bind.ContractBackend) (*IdentityRegistry, error) {
	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, errors.Wrap(err, "parse registry abi")
	}
	return &IdentityRegistry{
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// CurrentMerkleRoot returns the latest identity commitment merkle root.
func (r *IdentityRegistry) CurrentMerkleRoot(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getIdentityCommitmentMerkleRoot"); err != nil {
		return nil, errors.Wrap(err, "call getIdentityCommitmentMerkleRoot")
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// RootTimestamp returns the timestamp at which the given root became current.
func (r *IdentityRegistry) RootTimestamp(ctx context.Context, root *big.Int) (*big.Int, error) {
	var out []interface{}
	if err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "rootTimestamps", root); err != nil {
		return nil, errors.Wrap(err, "call rootTimestamps")
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}
