package services

import (
	"fmt"
	"strconv"

	"github.com/0xwitty/self/internal/circuits"
)

const (
	minAllowedAge = 1
	maxAllowedAge = 100
)

// policy is the disclosure policy of a Verification instance. It is mutated
// through the setters below until the first Verify call seals it; from then
// on Verify works on copies.
type policy struct {
	minimumAgeEnabled bool
	minimumAge        string

	nationalityEnabled bool
	nationality        string

	excludedCountriesEnabled bool
	excludedCountries        []string

	ofacPassportNo bool
	ofacNameAndDob bool
	ofacNameAndYob bool
}

func (p policy) snapshot() policy {
	out := p
	out.excludedCountries = append([]string(nil), p.excludedCountries...)
	return out
}

// SetMinimumAge enables the minimum age check. Ages outside [1, 100] are
// rejected.
func (v *Verification) SetMinimumAge(age int) error {
	if age < minAllowedAge || age > maxAllowedAge {
		return fmt.Errorf("%w: minimum age %d out of range [%d, %d]",
			ErrInvalidConfiguration, age, minAllowedAge, maxAllowedAge)
	}
	return v.mutatePolicy(func(p *policy) {
		p.minimumAgeEnabled = true
		p.minimumAge = strconv.Itoa(age)
	})
}

// SetNationality enables the nationality check against the given 3-letter
// code. The code is not validated against a country set.
func (v *Verification) SetNationality(code string) error {
	return v.mutatePolicy(func(p *policy) {
		p.nationalityEnabled = true
		p.nationality = code
	})
}

// ExcludeCountries enables the excluded-countries check, replacing any prior
// list. At most 40 codes are accepted; code shape is validated when the list
// is packed at request build time.
func (v *Verification) ExcludeCountries(codes ...string) error {
	if len(codes) > circuits.MaxForbiddenCountries {
		return fmt.Errorf("%w: %d excluded countries exceeds the maximum of %d",
			ErrInvalidConfiguration, len(codes), circuits.MaxForbiddenCountries)
	}
	return v.mutatePolicy(func(p *policy) {
		p.excludedCountriesEnabled = true
		p.excludedCountries = append([]string(nil), codes...)
	})
}

// EnablePassportNoOFACCheck enables the passport-number OFAC check.
func (v *Verification) EnablePassportNoOFACCheck() error {
	return v.mutatePolicy(func(p *policy) { p.ofacPassportNo = true })
}

// EnableNameAndDobOFACCheck enables the name and date of birth OFAC check.
func (v *Verification) EnableNameAndDobOFACCheck() error {
	return v.mutatePolicy(func(p *policy) { p.ofacNameAndDob = true })
}

// EnableNameAndYobOFACCheck enables the name and year of birth OFAC check.
func (v *Verification) EnableNameAndYobOFACCheck() error {
	return v.mutatePolicy(func(p *policy) { p.ofacNameAndYob = true })
}

func (v *Verification) mutatePolicy(fn func(*policy)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.sealed {
		return ErrPolicySealed
	}
	fn(&v.policy)
	return nil
}
