package circuits

// Public-signal layout of the disclose circuit. The circuit emits its outputs
// in a fixed order, so each semantic value lives at a known offset.
const (
	RevealedDataPackedIndex       = 0 // 3 limbs of packed revealed document data
	RevealedDataPackedLen         = 3
	ForbiddenCountriesPackedIndex = 3 // 4 limbs of the packed forbidden country list
	ForbiddenCountriesPackedLen   = 4
	NullifierIndex                = 7
	AttestationIDIndex            = 8
	MerkleRootIndex               = 9
	CurrentDateIndex              = 10 // 6 limbs, YYMMDD one digit per limb
	CurrentDateLen                = 6
	PassportNoSMTRootIndex        = 16
	NameAndDobSMTRootIndex        = 17
	NameAndYobSMTRootIndex        = 18
	UserIdentifierIndex           = 19
	ScopeIndex                    = 20

	// PubSignalCount is the total number of public signals the disclose
	// circuit produces.
	PubSignalCount = 21
)

// Field identifies a disclosure field that can be requested from the
// verification hub. The hub answers with one readable value per requested
// field, in request order.
type Field string

// Disclosure fields supported by the hub.
const (
	FieldIssuingState   Field = "issuing_state"
	FieldName           Field = "name"
	FieldPassportNumber Field = "passport_number"
	FieldNationality    Field = "nationality"
	FieldDateOfBirth    Field = "date_of_birth"
	FieldGender         Field = "gender"
	FieldExpiryDate     Field = "expiry_date"
	FieldOlderThan      Field = "older_than"
	FieldPassportNoOFAC Field = "passport_no_ofac"
	FieldNameAndDobOFAC Field = "name_and_dob_ofac"
	FieldNameAndYobOFAC Field = "name_and_yob_ofac"
)
