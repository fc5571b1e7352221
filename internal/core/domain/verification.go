package domain

import (
	"math/big"

	"github.com/0xwitty/self/internal/circuits"
)

// UserIDType selects how the numeric user identifier public signal is decoded
// into a caller-facing string.
type UserIDType uint8

// Supported user identifier encodings.
const (
	UserIDTypeUUID UserIDType = iota // canonical UUID form of the low 128 bits
	UserIDTypeHex                    // 0x-prefixed hex
)

// DisclosureFlags is the policy tuple submitted alongside the proof. Field
// order mirrors the hub calldata layout and is not negotiable.
type DisclosureFlags struct {
	OlderThanEnabled             bool
	OlderThan                    string
	ForbiddenCountriesEnabled    bool
	ForbiddenCountriesListPacked [circuits.ForbiddenCountriesPackedLen]*big.Int

	// OFAC check toggles: passport number, name and date of birth,
	// name and year of birth.
	OFACEnabled [3]bool
}

// VerificationRequest is a fully assembled hub submission, built fresh for
// every verification call.
type VerificationRequest struct {
	Flags           DisclosureFlags
	Proof           *Proof
	PubSignals      []*big.Int
	RequestedFields []circuits.Field
	MerkleRoot      *big.Int
	RootTimestamp   *big.Int
}

// ValidityDetails breaks the overall verdict into its four sub-checks.
type ValidityDetails struct {
	IsValidScope         bool `json:"isValidScope"`
	IsValidAttestationID bool `json:"isValidAttestationId"`
	IsValidProof         bool `json:"isValidProof"`
	IsValidNationality   bool `json:"isValidNationality"`
}

// CredentialSubject is the decoded set of disclosed identity fields. Optional
// fields keep their zero value when the policy did not request them.
type CredentialSubject struct {
	MerkleRoot     string `json:"merkleRoot,omitempty"`
	AttestationID  string `json:"attestationId,omitempty"`
	IssuingState   string `json:"issuingState,omitempty"`
	Name           string `json:"name,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	Nationality    string `json:"nationality,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Gender         string `json:"gender,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	OlderThan      string `json:"olderThan,omitempty"`
	PassportNoOFAC bool   `json:"passportNoOfac,omitempty"`
	NameAndDobOFAC bool   `json:"nameAndDobOfac,omitempty"`
	NameAndYobOFAC bool   `json:"nameAndYobOfac,omitempty"`
}

// VerificationOutcome is the single structured result of a verification call.
// Soft validation failures are reported here, never as errors.
type VerificationOutcome struct {
	IsValid           bool
	IsValidDetails    ValidityDetails
	UserID            string
	Application       string
	Nullifier         string
	CredentialSubject CredentialSubject
	Proof             *Proof
	PubSignals        []*big.Int
	// Error carries the hub call failure or the in-band hub error slot.
	// It never reflects a soft validation failure.
	Error error
}
