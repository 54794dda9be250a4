package group

import (
	"fmt"
	"math/big"
)

// bigScalar is the Scalar implementation shared by all groups: a value
// already reduced modulo the group order.
type bigScalar struct {
	v *big.Int
}

func (s *bigScalar) BigInt() *big.Int { return s.v }

func (s *bigScalar) Encode() string {
	return fmt.Sprintf("%064x", s.v)
}
