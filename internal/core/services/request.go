package services

import (
	"context"
	"errors"
	"math/big"

	"github.com/0xwitty/self/internal/circuits"
	"github.com/0xwitty/self/internal/core/domain"
	"github.com/0xwitty/self/internal/log"
)

// requestedFieldSpec ties a disclosure field to the policy flag that requests
// it. Mandatory fields have a nil predicate.
type requestedFieldSpec struct {
	field   circuits.Field
	enabled func(policy) bool
}

// requestedFieldOrder defines the positional layout of the hub response: the
// seven mandatory fields first, then the conditional ones in this exact
// order. The hub maps its readable values onto this order, so it must never
// be reordered.
var requestedFieldOrder = []requestedFieldSpec{
	{field: circuits.FieldIssuingState},
	{field: circuits.FieldName},
	{field: circuits.FieldPassportNumber},
	{field: circuits.FieldNationality},
	{field: circuits.FieldDateOfBirth},
	{field: circuits.FieldGender},
	{field: circuits.FieldExpiryDate},
	{field: circuits.FieldOlderThan, enabled: func(p policy) bool { return p.minimumAgeEnabled }},
	{field: circuits.FieldPassportNoOFAC, enabled: func(p policy) bool { return p.ofacPassportNo }},
	{field: circuits.FieldNameAndDobOFAC, enabled: func(p policy) bool { return p.ofacNameAndDob }},
	{field: circuits.FieldNameAndYobOFAC, enabled: func(p policy) bool { return p.ofacNameAndYob }},
}

func requestedFields(p policy) []circuits.Field {
	fields := make([]circuits.Field, 0, len(requestedFieldOrder))
	for _, spec := range requestedFieldOrder {
		if spec.enabled == nil || spec.enabled(p) {
			fields = append(fields, spec.field)
		}
	}
	return fields
}

// buildRequest assembles the hub submission for one verification call: packs
// the excluded country list, swaps the proof's B point columns, materializes
// the disclosure flag tuple and the requested field list, and reads a fresh
// merkle root with its timestamp from the registry.
func (v *Verification) buildRequest(ctx context.Context, p policy, proof *domain.Proof, signals []*big.Int) (*domain.VerificationRequest, error) {
	packed, err := circuits.PackForbiddenCountries(p.excludedCountries)
	if err != nil {
		return nil, errors.Join(ErrUpstream, err)
	}

	flags := domain.DisclosureFlags{
		OlderThanEnabled:             p.minimumAgeEnabled,
		OlderThan:                    p.minimumAge,
		ForbiddenCountriesEnabled:    p.excludedCountriesEnabled,
		ForbiddenCountriesListPacked: packed,
		OFACEnabled:                  [3]bool{p.ofacPassportNo, p.ofacNameAndDob, p.ofacNameAndYob},
	}

	root, err := v.registry.CurrentMerkleRoot(ctx)
	if err != nil {
		log.Error(ctx, "cannot read current merkle root", err)
		return nil, errors.Join(ErrUpstream, err)
	}
	timestamp, err := v.registry.RootTimestamp(ctx, root)
	if err != nil {
		log.Error(ctx, "cannot read root timestamp", err, "root", root.String())
		return nil, errors.Join(ErrUpstream, err)
	}

	return &domain.VerificationRequest{
		Flags:           flags,
		Proof:           proof.Swapped(),
		PubSignals:      signals,
		RequestedFields: requestedFields(p),
		MerkleRoot:      root,
		RootTimestamp:   timestamp,
	}, nil
}
