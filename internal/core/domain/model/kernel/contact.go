package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maxwellkiplagat/Deliveroo/internal/pkg/errs"
)

const (
	// PersonNameMinLen and PersonNameMaxLen bound a person name's length.
	PersonNameMinLen = 2
	PersonNameMaxLen = 50

	// AddressMinLen is the minimum length of a usable street address.
	AddressMinLen = 10
)

var (
	// personNamePattern allows letters and spaces, 2 to 50 characters.
	personNamePattern = regexp.MustCompile(`^[A-Za-z\s]{2,50}$`)

	// phonePattern is deliberately loose: optional leading +, then at least
	// ten characters drawn from digits, spaces, hyphens, and parentheses.
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
)

// ErrPersonNameIsNotConstructed is returned when validating a zero-value PersonName.
var ErrPersonNameIsNotConstructed = errs.NewValueIsRequiredError(
	"person name must be created via NewPersonName")

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"phone must be created via NewPhone")

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress")

// PersonName is a validated sender or receiver name: letters and spaces
// only, 2-50 characters.
type PersonName struct {
	value string
}

// NewPersonName validates and creates a PersonName.
func NewPersonName(value string) (PersonName, error) {
	if value == "" {
		return PersonName{}, errs.NewValueIsRequiredError("name")
	}
	if !personNamePattern.MatchString(value) {
		return PersonName{}, errs.NewValueIsInvalidErrorWithCause("name",
			fmt.Errorf("%q must be %d-%d characters, letters only", value, PersonNameMinLen, PersonNameMaxLen))
	}
	return PersonName{value: value}, nil
}

// String returns the name text.
func (n PersonName) String() string {
	return n.value
}

// Validate returns ErrPersonNameIsNotConstructed for the zero value.
func (n PersonName) Validate() error {
	if n.value == "" {
		return ErrPersonNameIsNotConstructed
	}
	return nil
}

// Phone is a validated phone number in a loose international format.
type Phone struct {
	value string
}

// NewPhone validates and creates a Phone.
func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(value) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not a valid phone number", value))
	}
	return Phone{value: value}, nil
}

// String returns the phone text.
func (p Phone) String() string {
	return p.value
}

// Validate returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}

// Address is a free-form street address of at least AddressMinLen characters.
// Equality between addresses is exact string comparison; two addresses that
// differ only in casing or whitespace are treated as different.
type Address struct {
	value string
}

// NewAddress validates and creates an Address.
func NewAddress(value string) (Address, error) {
	if strings.TrimSpace(value) == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if len(value) < AddressMinLen {
		return Address{}, errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("%q is shorter than %d characters", value, AddressMinLen))
	}
	return Address{value: value}, nil
}

// String returns the address text.
func (a Address) String() string {
	return a.value
}

// IsEqual reports whether two addresses are exactly the same string.
func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	if a.value == "" {
		return ErrAddressIsNotConstructed
	}
	return nil
}
