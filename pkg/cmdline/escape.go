// SPDX-License-Identifier: MPL-2.0

package cmdline

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/jlinkrun/jlinkrun/pkg/platform"
)

const (
	// POSIX quotes with literal double quotes and escapes embedded quotes with a backslash.
	POSIX QuotingPolicy = "posix"
	// Windows wraps in backslash-escaped quotes and escapes embedded quotes with
	// three backslashes, matching what the JDK launchers expect on that platform.
	Windows QuotingPolicy = "windows"
)

// ErrInvalidQuotingPolicy is the sentinel error wrapped by InvalidQuotingPolicyError.
var ErrInvalidQuotingPolicy = errors.New("invalid quoting policy")

// HostPolicy is the quoting policy of the running platform, fixed at startup.
var HostPolicy = PolicyFor(runtime.GOOS)

type (
	// QuotingPolicy selects the quoting convention used by an Escaper.
	QuotingPolicy string

	// InvalidQuotingPolicyError is returned when a QuotingPolicy is not one of
	// the known conventions.
	InvalidQuotingPolicyError struct {
		Value QuotingPolicy
	}

	// Escaper escapes single arguments for inclusion in a command line.
	// The zero value is not usable; create one with NewEscaper.
	Escaper struct {
		quote   string
		wrapper string
	}
)

// PolicyFor returns the quoting policy for a runtime.GOOS value.
func PolicyFor(goos string) QuotingPolicy {
	if goos == platform.Windows {
		return Windows
	}
	return POSIX
}

// Error implements the error interface.
func (e *InvalidQuotingPolicyError) Error() string {
	return fmt.Sprintf("invalid quoting policy %q (valid: %s, %s)", e.Value, POSIX, Windows)
}

// Unwrap returns ErrInvalidQuotingPolicy for errors.Is() compatibility.
func (e *InvalidQuotingPolicyError) Unwrap() error { return ErrInvalidQuotingPolicy }

// IsValid returns whether the policy is a known convention,
// and a list of validation errors if it is not.
func (p QuotingPolicy) IsValid() (bool, []error) {
	switch p {
	case POSIX, Windows:
		return true, nil
	default:
		return false, []error{&InvalidQuotingPolicyError{Value: p}}
	}
}

// String returns the string representation of the QuotingPolicy.
func (p QuotingPolicy) String() string { return string(p) }

// NewEscaper returns an Escaper for the given policy.
func NewEscaper(p QuotingPolicy) (*Escaper, error) {
	if isValid, errs := p.IsValid(); !isValid {
		return nil, errs[0]
	}
	if p == Windows {
		return &Escaper{quote: `\\\"`, wrapper: `\"`}, nil
	}
	return &Escaper{quote: `\"`, wrapper: `"`}, nil
}

// MustEscaper is like NewEscaper but panics on an unknown policy.
func MustEscaper(p QuotingPolicy) *Escaper {
	e, err := NewEscaper(p)
	if err != nil {
		panic(err)
	}
	return e
}

// Escape replaces every double quote in arg with the policy's escaped quote
// and, if the result contains a space, wraps it in the policy's delimiter.
// Arguments with neither quotes nor spaces are returned unchanged.
func (e *Escaper) Escape(arg string) string {
	arg = strings.ReplaceAll(arg, `"`, e.quote)
	if strings.Contains(arg, " ") {
		return e.wrapper + arg + e.wrapper
	}
	return arg
}
