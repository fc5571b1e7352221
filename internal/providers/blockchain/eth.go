package blockchain

import (
	"context"
	"fmt"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/0xwitty/self/internal/gateways"
	"github.com/0xwitty/self/internal/log"
	"github.com/0xwitty/self/pkg/network"
)

// InitEthClient dials an ethereum node.
func InitEthClient(ethURL string) (*ethclient.Client, error) {
	ec, err := ethclient.Dial(ethURL)
	if err != nil {
		return nil, fmt.Errorf("failed connect to eth node %s: %s", ethURL, err.Error())
	}
	return ec, nil
}

// InitGateways dials the configured network and binds the identity registry
// and verification hub contracts on it.
func InitGateways(ctx context.Context, settings network.NetworkSettings) (*gateways.IdentityRegistry, *gateways.VerificationHub, error) {
	ec, err := InitEthClient(settings.NetworkURL)
	if err != nil {
		log.Error(ctx, "cannot dial eth node", err, "url", settings.NetworkURL)
		return nil, nil, err
	}

	registry, err := gateways.NewIdentityRegistry(ethCommon.HexToAddress(settings.RegistryAddress), ec)
	if err != nil {
		return nil, nil, err
	}
	hub, err := gateways.NewVerificationHub(ethCommon.HexToAddress(settings.HubAddress), ec)
	if err != nil {
		return nil, nil, err
	}
	return registry, hub, nil
}
