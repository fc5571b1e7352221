package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/iden3/go-rapidsnark/types"

	"github.com/0xwitty/self/internal/config"
	"github.com/0xwitty/self/internal/core/domain"
	"github.com/0xwitty/self/internal/core/services"
	"github.com/0xwitty/self/internal/log"
	"github.com/0xwitty/self/internal/providers/blockchain"
	"github.com/0xwitty/self/pkg/network"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Error(context.Background(), "cannot load config", err)
		os.Exit(1)
	}

	ctx := log.NewContext(context.Background(), cfg.Log.Level, cfg.Log.Mode, os.Stdout)

	if len(os.Args) < 2 {
		log.Error(ctx, "missing proof file argument", nil, "usage", "verifier <proof.json>")
		os.Exit(1)
	}

	settings, err := network.LoadSettings(cfg.NetworkResolverPath)
	if err != nil {
		log.Error(ctx, "cannot load network resolver settings", err)
		os.Exit(1)
	}
	networkSettings, err := settings.Resolve(cfg.Network)
	if err != nil {
		log.Error(ctx, "cannot resolve network", err, "network", cfg.Network)
		os.Exit(1)
	}

	registry, hub, err := blockchain.InitGateways(ctx, networkSettings)
	if err != nil {
		log.Error(ctx, "cannot initialize on-chain gateways", err)
		os.Exit(1)
	}

	userIDType := domain.UserIDTypeUUID
	if cfg.Verification.UserIDType == "hex" {
		userIDType = domain.UserIDTypeHex
	}

	verification, err := services.NewVerification(cfg.Verification.Endpoint, cfg.Verification.Scope, userIDType, registry, hub)
	if err != nil {
		log.Error(ctx, "cannot create verification service", err)
		os.Exit(1)
	}
	if err := applyPolicy(verification, cfg.Policy); err != nil {
		log.Error(ctx, "cannot apply disclosure policy", err)
		os.Exit(1)
	}

	zkp, err := readProof(os.Args[1])
	if err != nil {
		log.Error(ctx, "cannot read proof file", err, "path", os.Args[1])
		os.Exit(1)
	}

	outcome, err := verification.Verify(ctx, zkp)
	if err != nil {
		log.Error(ctx, "verification request could not be assembled", err)
		os.Exit(1)
	}

	log.Info(ctx, "verification finished",
		"valid", outcome.IsValid,
		"validScope", outcome.IsValidDetails.IsValidScope,
		"validAttestationId", outcome.IsValidDetails.IsValidAttestationID,
		"validProof", outcome.IsValidDetails.IsValidProof,
		"validNationality", outcome.IsValidDetails.IsValidNationality,
		"userId", outcome.UserID,
		"nullifier", outcome.Nullifier,
	)
	if outcome.Error != nil {
		log.Warn(ctx, "verification reported an error", "err", outcome.Error.Error())
	}
	if !outcome.IsValid {
		os.Exit(2)
	}
}

func applyPolicy(v *services.Verification, p config.Policy) error {
	if p.MinimumAge > 0 {
		if err := v.SetMinimumAge(p.MinimumAge); err != nil {
			return err
		}
	}
	if p.Nationality != "" {
		if err := v.SetNationality(p.Nationality); err != nil {
			return err
		}
	}
	if len(p.ExcludedCountries) > 0 {
		if err := v.ExcludeCountries(p.ExcludedCountries...); err != nil {
			return err
		}
	}
	if p.PassportNoOFAC {
		if err := v.EnablePassportNoOFACCheck(); err != nil {
			return err
		}
	}
	if p.NameAndDobOFAC {
		if err := v.EnableNameAndDobOFACCheck(); err != nil {
			return err
		}
	}
	if p.NameAndYobOFAC {
		if err := v.EnableNameAndYobOFACCheck(); err != nil {
			return err
		}
	}
	return nil
}

func readProof(path string) (*types.ZKProof, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var zkp types.ZKProof
	if err := json.Unmarshal(raw, &zkp); err != nil {
		return nil, err
	}
	return &zkp, nil
}
