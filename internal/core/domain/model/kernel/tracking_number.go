package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

const (
	// TrackingNumberPrefix is the fixed two-character prefix of every tracking number.
	TrackingNumberPrefix = "BR"

	// trackingNumberRandomLength is the number of random characters after the prefix.
	trackingNumberRandomLength = 10

	// trackingNumberAlphabet is the character set the random part is drawn from.
	trackingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// trackingNumberPattern is the complete shape of a valid tracking number.
var trackingNumberPattern = regexp.MustCompile(`^` + TrackingNumberPrefix + `[A-Z0-9]{10}$`)

// ErrTrackingNumberIsNotConstructed is returned when attempting to use an improperly
// initialized TrackingNumber. Tracking numbers must be created via NewTrackingNumber
// or a TrackingNumberGenerator to ensure validity.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or a TrackingNumberGenerator")

// TrackingNumber is the human-readable unique code identifying a shipment.
// It is an immutable value object with a fixed shape: the "BR" prefix followed
// by ten characters drawn from A-Z and 0-9. The zero value is invalid and will
// fail validation - use constructors to create instances.
//
// Uniqueness is not a property of the value itself; the persistence layer's
// unique constraint is the source of truth, and callers must be prepared for
// a generated number to collide with an existing one.
//
// Example:
//
//	tn, err := kernel.NewTrackingNumber("BR7F3K9Q2MX1")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(tn) // Output: BR7F3K9Q2MX1
type TrackingNumber struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewTrackingNumber creates a TrackingNumber from its string representation.
// The string must match the fixed shape (prefix + 10 characters from [A-Z0-9]).
// Returns an error if the string does not match.
//
// This constructor is typically used when reconstructing tracking numbers from
// persistence or when parsing operator input.
func NewTrackingNumber(value string) (TrackingNumber, error) {
	if value == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(value) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber",
			fmt.Errorf("%q does not match %s", value, trackingNumberPattern))
	}

	return TrackingNumber{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the TrackingNumber was created through a constructor.
// Returns ErrTrackingNumberIsNotConstructed for zero-value instances.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}

// String returns the tracking number's string representation.
// Implements the fmt.Stringer interface.
func (t TrackingNumber) String() string {
	return t.value
}

// Equals reports whether two tracking numbers carry the same value.
func (t TrackingNumber) Equals(other TrackingNumber) bool {
	return t.value == other.value
}

// TrackingNumberGenerator produces fresh tracking numbers.
// Generation is random and carries no uniqueness guarantee of its own;
// the caller verifies uniqueness through the storage constraint and retries
// with a fresh number on collision.
//
// The interface exists so tests can substitute a deterministic source
// for the default cryptographically random implementation.
type TrackingNumberGenerator interface {
	Generate() (TrackingNumber, error)
}

// RandomTrackingNumberGenerator generates tracking numbers using crypto/rand,
// drawing each of the ten random characters uniformly from the alphabet.
type RandomTrackingNumberGenerator struct{}

// NewRandomTrackingNumberGenerator creates the default tracking number generator.
func NewRandomTrackingNumberGenerator() RandomTrackingNumberGenerator {
	return RandomTrackingNumberGenerator{}
}

// Generate produces a new random tracking number.
// Returns an error only if the system's entropy source fails.
func (RandomTrackingNumberGenerator) Generate() (TrackingNumber, error) {
	alphabetSize := big.NewInt(int64(len(trackingNumberAlphabet)))

	buf := make([]byte, trackingNumberRandomLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return TrackingNumber{}, fmt.Errorf("reading random source: %w", err)
		}
		buf[i] = trackingNumberAlphabet[n.Int64()]
	}

	return TrackingNumber{
		value: TrackingNumberPrefix + string(buf),
		guard: guard.NewConstructorGuard(),
	}, nil
}
