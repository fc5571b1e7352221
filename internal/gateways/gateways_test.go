package gateways

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xwitty/self/internal/circuits"
	"github.com/0xwitty/self/internal/core/domain"
)

func TestContractABIsParse(t *testing.T) {
	registry, err := abi.JSON(strings.NewReader(registryABI))
	require.NoError(t, err)
	assert.Contains(t, registry.Methods, "getIdentityCommitmentMerkleRoot")
	assert.Contains(t, registry.Methods, "rootTimestamps")

	hub, err := abi.JSON(strings.NewReader(hubABI))
	require.NoError(t, err)
	require.Contains(t, hub.Methods, "verifyAll")
	assert.Len(t, hub.Methods["verifyAll"].Inputs, 3)
	assert.Len(t, hub.Methods["verifyAll"].Outputs, 3)
}

func TestHubCalldataPacksWithABI(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(hubABI))
	require.NoError(t, err)

	req := testRequest(t)
	calldata, err := toCalldata(req)
	require.NoError(t, err)

	fields := make([]string, len(req.RequestedFields))
	for i, f := range req.RequestedFields {
		fields[i] = string(f)
	}

	_, err = parsed.Pack("verifyAll", req.RootTimestamp, calldata, fields)
	require.NoError(t, err)
}

func TestToCalldataRejectsShortSignals(t *testing.T) {
	req := testRequest(t)
	req.PubSignals = req.PubSignals[:5]
	_, err := toCalldata(req)
	require.Error(t, err)
}

func testRequest(t *testing.T) *domain.VerificationRequest {
	t.Helper()

	packed, err := circuits.PackForbiddenCountries([]string{"IRN"})
	require.NoError(t, err)

	signals := make([]*big.Int, circuits.PubSignalCount)
	for i := range signals {
		signals[i] = big.NewInt(int64(i + 1))
	}

	proof := &domain.Proof{}
	for i := 0; i < 2; i++ {
		proof.A[i] = big.NewInt(int64(i + 1))
		proof.C[i] = big.NewInt(int64(i + 3))
		for j := 0; j < 2; j++ {
			proof.B[i][j] = big.NewInt(int64(10*i + j + 1))
		}
	}

	return &domain.VerificationRequest{
		Flags: domain.DisclosureFlags{
			OlderThanEnabled:             true,
			OlderThan:                    "18",
			ForbiddenCountriesEnabled:    true,
			ForbiddenCountriesListPacked: packed,
		},
		Proof:           proof,
		PubSignals:      signals,
		RequestedFields: []circuits.Field{circuits.FieldName, circuits.FieldOlderThan},
		MerkleRoot:      big.NewInt(42),
		RootTimestamp:   big.NewInt(1700000000),
	}
}
