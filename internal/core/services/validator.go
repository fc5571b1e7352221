package services

import (
	"encoding/hex"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/0xwitty/self/internal/circuits"
	"github.com/0xwitty/self/internal/core/domain"
	"github.com/0xwitty/self/internal/core/ports"
)

const ofacClearValue = "1"

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// buildOutcome cross-checks the hub response against locally recomputed
// expectations and decodes the credential subject. rawAttestationID is the
// attestation id public signal exactly as submitted, before numeric parsing.
// Soft failures only flip sub-checks; a failed hub call (callErr != nil)
// yields a well-formed outcome with every sub-check false and the error
// embedded.
func (v *Verification) buildOutcome(p policy, rawAttestationID string, req *domain.VerificationRequest, resp *ports.HubResponse, callErr error) *domain.VerificationOutcome {
	signals := req.PubSignals
	outcome := &domain.VerificationOutcome{
		UserID:      decodeUserIdentifier(signals[circuits.UserIdentifierIndex], v.userIDType),
		Application: signals[circuits.ScopeIndex].String(),
		Nullifier:   signals[circuits.NullifierIndex].String(),
		Proof:       req.Proof,
		PubSignals:  signals,
	}

	if callErr == nil && resp == nil {
		callErr = ErrEmptyHubResponse
	}
	if callErr != nil {
		outcome.Error = callErr
		return outcome
	}

	isValidScope := v.scope.Cmp(signals[circuits.ScopeIndex]) == 0
	// The attestation id is compared against the raw signal string on purpose:
	// formatting of the submitted value (leading zeros included) is part of
	// the check, so a canonicalized big.Int rendering would be too lenient.
	isValidAttestationID := strconv.Itoa(v.attestationID) == rawAttestationID
	isValidProof := resp.Valid

	revealed := make(map[circuits.Field]string, len(req.RequestedFields))
	for i, field := range req.RequestedFields {
		if i >= len(resp.Values) {
			break
		}
		revealed[field] = resp.Values[i]
	}

	isValidNationality := true
	if p.nationalityEnabled {
		isValidNationality = revealed[circuits.FieldNationality] == p.nationality
	}

	outcome.IsValidDetails = domain.ValidityDetails{
		IsValidScope:         isValidScope,
		IsValidAttestationID: isValidAttestationID,
		IsValidProof:         isValidProof,
		IsValidNationality:   isValidNationality,
	}
	outcome.IsValid = isValidScope && isValidAttestationID && isValidProof && isValidNationality

	outcome.CredentialSubject = domain.CredentialSubject{
		MerkleRoot:     signals[circuits.MerkleRootIndex].String(),
		AttestationID:  strconv.Itoa(v.attestationID),
		IssuingState:   revealed[circuits.FieldIssuingState],
		Name:           revealed[circuits.FieldName],
		PassportNumber: revealed[circuits.FieldPassportNumber],
		Nationality:    revealed[circuits.FieldNationality],
		DateOfBirth:    revealed[circuits.FieldDateOfBirth],
		Gender:         revealed[circuits.FieldGender],
		ExpiryDate:     revealed[circuits.FieldExpiryDate],
		OlderThan:      revealed[circuits.FieldOlderThan],
		PassportNoOFAC: revealed[circuits.FieldPassportNoOFAC] == ofacClearValue,
		NameAndDobOFAC: revealed[circuits.FieldNameAndDobOFAC] == ofacClearValue,
		NameAndYobOFAC: revealed[circuits.FieldNameAndYobOFAC] == ofacClearValue,
	}
	outcome.Error = resp.Err

	return outcome
}

// decodeUserIdentifier renders the numeric user identifier signal in the
// encoding the orchestrator was constructed with.
func decodeUserIdentifier(signal *big.Int, t domain.UserIDType) string {
	switch t {
	case domain.UserIDTypeUUID:
		raw := make([]byte, 16)
		new(big.Int).And(signal, maxUint128).FillBytes(raw)
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return ""
		}
		return id.String()
	default:
		raw := signal.Bytes()
		if len(raw) == 0 {
			raw = []byte{0}
		}
		return "0x" + hex.EncodeToString(raw)
	}
}
