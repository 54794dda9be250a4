package group

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// ModAdd is the integers modulo a prime n under addition, with generator
// 1. Every protocol identity holds (s*G = s mod n, element addition is
// integer addition), so it stands in for the curve in tests and lets the
// worked examples be checked by hand. Not for production use.
type ModAdd struct {
	n *big.Int
}

func NewModAdd(n int64) *ModAdd {
	return &ModAdd{n: big.NewInt(n)}
}

func (g *ModAdd) Name() string { return fmt.Sprintf("modadd-%d", g.n) }

func (g *ModAdd) Order() *big.Int { return new(big.Int).Set(g.n) }

type modElement struct {
	v *big.Int
}

func (e *modElement) IsIdentity() bool { return e.v.Sign() == 0 }

func (e *modElement) Encode() string { return fmt.Sprintf("%02x", e.v) }

func (e *modElement) Equal(other Element) bool {
	o, ok := other.(*modElement)
	return ok && e.v.Cmp(o.v) == 0
}

func (g *ModAdd) ParseElement(s string) (Element, error) {
	v, err := g.parseHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	return &modElement{v: v}, nil
}

func (g *ModAdd) ParseScalar(s string) (Scalar, error) {
	v, err := g.parseHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	return &bigScalar{v: v}, nil
}

func (g *ModAdd) parseHex(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty")
	}
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		return nil, fmt.Errorf("not hex: %q", s)
	}
	return v.Mod(v, g.n), nil
}

func (g *ModAdd) RandomScalar() (Scalar, error) {
	v, err := rand.Int(rand.Reader, g.n)
	if err != nil {
		return nil, err
	}
	return &bigScalar{v: v}, nil
}

func (g *ModAdd) ScalarBaseMult(s Scalar) Element {
	return &modElement{v: new(big.Int).Mod(s.BigInt(), g.n)}
}

func (g *ModAdd) ScalarMult(p Element, s Scalar) Element {
	v := new(big.Int).Mul(p.(*modElement).v, s.BigInt())
	return &modElement{v: v.Mod(v, g.n)}
}

func (g *ModAdd) Add(p, q Element) Element {
	v := new(big.Int).Add(p.(*modElement).v, q.(*modElement).v)
	return &modElement{v: v.Mod(v, g.n)}
}
