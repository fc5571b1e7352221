package gateways

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/0xwitty/self/internal/circuits"
	"github.com/0xwitty/self/internal/common"
	"github.com/0xwitty/self/internal/core/domain"
	"github.com/0xwitty/self/internal/core/ports"
)

// hubABI is the verification hub call surface.
const hubABI = `[
  {"inputs":[
    {"internalType":"uint256","name":"rootTimestamp","type":"uint256"},
    {"components":[
      {"components":[
        {"internalType":"uint256[2]","name":"a","type":"uint256[2]"},
        {"internalType":"uint256[2][2]","name":"b","type":"uint256[2][2]"},
        {"internalType":"uint256[2]","name":"c","type":"uint256[2]"}
      ],"internalType":"struct IVerificationHub.Groth16Proof","name":"proof","type":"tuple"},
      {"internalType":"uint256[21]","name":"pubSignals","type":"uint256[21]"},
      {"components":[
        {"internalType":"bool","name":"olderThanEnabled","type":"bool"},
        {"internalType":"uint256","name":"olderThan","type":"uint256"},
        {"internalType":"bool","name":"forbiddenCountriesEnabled","type":"bool"},
        {"internalType":"uint256[4]","name":"forbiddenCountriesListPacked","type":"uint256[4]"},
        {"internalType":"bool[3]","name":"ofacEnabled","type":"bool[3]"}
      ],"internalType":"struct IVerificationHub.DisclosureFlags","name":"flags","type":"tuple"}
    ],"internalType":"struct IVerificationHub.HubProof","name":"hubProof","type":"tuple"},
    {"internalType":"string[]","name":"fields","type":"string[]"}
  ],"name":"verifyAll","outputs":[
    {"internalType":"string[]","name":"revealed","type":"string[]"},
    {"internalType":"bool","name":"valid","type":"bool"},
    {"internalType":"string","name":"error","type":"string"}
  ],"stateMutability":"view","type":"function"}
]`

type hubGroth16Proof struct {
	A [2]*big.Int
	B [2][2]*big.Int
	C [2]*big.Int
}

type hubDisclosureFlags struct {
	OlderThanEnabled             bool
	OlderThan                    *big.Int
	ForbiddenCountriesEnabled    bool
	ForbiddenCountriesListPacked [circuits.ForbiddenCountriesPackedLen]*big.Int
	OfacEnabled                  [3]bool
}

type hubProofCalldata struct {
	Proof      hubGroth16Proof
	PubSignals [circuits.PubSignalCount]*big.Int
	Flags      hubDisclosureFlags
}

// VerificationHub submits assembled requests to the on-chain verification
// hub. It implements ports.Hub.
type VerificationHub struct {
	contract *bind.BoundContract
}

// NewVerificationHub binds the hub contract at the given address.
func NewVerificationHub(address ethCommon.Address, backend bind.ContractBackend) (*VerificationHub, error) {
	parsed, err := abi.JSON(strings.NewReader(hubABI))
	if err != nil {
		return nil, errors.Wrap(err, "parse hub abi")
	}
	return &VerificationHub{
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// VerifyAll submits the request and returns the hub verdict. A returned error
// means the call itself failed and the verification cannot be interpreted.
func (h *VerificationHub) VerifyAll(ctx context.Context, req *domain.VerificationRequest) (*ports.HubResponse, error) {
	calldata, err := toCalldata(req)
	if err != nil {
		return nil, err
	}

	fields := make([]string, len(req.RequestedFields))
	for i, f := range req.RequestedFields {
		fields[i] = string(f)
	}

	var out []interface{}
	err = h.contract.Call(&bind.CallOpts{Context: ctx}, &out, "verifyAll", req.RootTimestamp, calldata, fields)
	if err != nil {
		return nil, errors.Wrap(err, "call verifyAll")
	}

	resp := &ports.HubResponse{
		Values: *abi.ConvertType(out[0], new([]string)).(*[]string),
		Valid:  *abi.ConvertType(out[1], new(bool)).(*bool),
	}
	if hubErr := *abi.ConvertType(out[2], new(string)).(*string); hubErr != "" {
		resp.Err = errors.New(hubErr)
	}
	return resp, nil
}

func toCalldata(req *domain.VerificationRequest) (hubProofCalldata, error) {
	var calldata hubProofCalldata
	if len(req.PubSignals) != circuits.PubSignalCount {
		return calldata, errors.Errorf("want %d public signals, got %d", circuits.PubSignalCount, len(req.PubSignals))
	}
	copy(calldata.PubSignals[:], req.PubSignals)

	calldata.Proof = hubGroth16Proof{A: req.Proof.A, B: req.Proof.B, C: req.Proof.C}

	olderThan := big.NewInt(0)
	if req.Flags.OlderThan != "" {
		var err error
		olderThan, err = common.StringToBigInt(req.Flags.OlderThan)
		if err != nil {
			return calldata, errors.Wrap(err, "parse older-than value")
		}
	}
	calldata.Flags = hubDisclosureFlags{
		OlderThanEnabled:             req.Flags.OlderThanEnabled,
		OlderThan:                    olderThan,
		ForbiddenCountriesEnabled:    req.Flags.ForbiddenCountriesEnabled,
		ForbiddenCountriesListPacked: req.Flags.ForbiddenCountriesListPacked,
		OfacEnabled:                  req.Flags.OFACEnabled,
	}
	return calldata, nil
}
