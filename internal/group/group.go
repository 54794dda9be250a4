// Package group abstracts the prime-order group the identification
// protocol runs over. The production implementation is secp256k1; tests
// use a small additive group so protocol logic can be checked without
// curve arithmetic.
package group

import (
	"errors"
	"math/big"
)

var (
	ErrInvalidPoint  = errors.New("invalid point")
	ErrInvalidScalar = errors.New("invalid scalar")
	ErrIdentityPoint = errors.New("point is identity")
)

// Element is a group element (a curve point, or an integer in test
// doubles).
type Element interface {
	// Encode returns the fixed-format hex encoding of the element.
	Encode() string

	// Equal reports exact group-element equality.
	Equal(other Element) bool

	// IsIdentity reports whether this is the group identity element.
	IsIdentity() bool
}

// Scalar is an integer modulo the group order.
type Scalar interface {
	// Encode returns the big-endian hex encoding of the scalar.
	Encode() string

	// BigInt returns the scalar value.
	BigInt() *big.Int
}

// Group bundles the operations the protocol engine needs. Implementations
// must reduce parsed and generated scalars modulo Order.
type Group interface {
	// Name identifies the group (e.g. "secp256k1").
	Name() string

	// ParseElement decodes a hex-encoded candidate element. It returns
	// ErrInvalidPoint for anything that does not decode to a valid
	// element and ErrIdentityPoint for the group identity.
	ParseElement(s string) (Element, error)

	// ParseScalar decodes a big-endian hex scalar, reduced mod Order.
	ParseScalar(s string) (Scalar, error)

	// RandomScalar draws a fresh scalar uniformly over [0, Order) with
	// cryptographic-strength entropy.
	RandomScalar() (Scalar, error)

	// ScalarBaseMult computes s*G for the group generator G.
	ScalarBaseMult(s Scalar) Element

	// ScalarMult computes s*P.
	ScalarMult(p Element, s Scalar) Element

	// Add computes P + Q.
	Add(p, q Element) Element

	// Order returns the group order.
	Order() *big.Int
}
