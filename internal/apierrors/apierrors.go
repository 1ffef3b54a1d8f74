// Package apierrors is the small shared error vocabulary the age-attestation
// API and its demo HTTP wrapper classify failures into, mirroring the
// monorepo sibling fabric-resolver's response/error pattern: a handful of
// sentinel errors, compared with errors.Is, instead of bespoke error types
// per call site.
package apierrors

import "errors"

var (
	// ErrInfrastructure covers failures in the proving/verification key
	// lifecycle itself (compile or setup failure) rather than anything
	// about caller-supplied data.
	ErrInfrastructure = errors.New("ageattest: infrastructure failure")

	// ErrParse covers a QR string that cannot be decoded: wrong number of
	// ';'-separated tokens, invalid base58, or a malformed public header.
	ErrParse = errors.New("ageattest: malformed proof artifact")

	// ErrVerificationFailed covers a syntactically well-formed proof that
	// simply does not verify against its declared public inputs. This is
	// the expected, non-exceptional outcome for a decoy or forged proof:
	// callers should treat it as "Invalid", not as a system error.
	ErrVerificationFailed = errors.New("ageattest: verification failed")
)
