package group

import (
	"errors"
	"math/big"
	"testing"
)

// SEC1 compressed encoding of the secp256k1 base point.
const secpGeneratorHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestSecp256k1_ParseGenerator(t *testing.T) {
	g := NewSecp256k1()

	p, err := g.ParseElement(secpGeneratorHex)
	if err != nil {
		t.Fatalf("ParseElement error: %v", err)
	}

	one, err := g.ParseScalar("01")
	if err != nil {
		t.Fatalf("ParseScalar error: %v", err)
	}

	if !g.ScalarBaseMult(one).Equal(p) {
		t.Fatalf("1*G does not equal the parsed generator")
	}
	if p.Encode() != secpGeneratorHex {
		t.Fatalf("round trip mismatch: %s", p.Encode())
	}
}

func TestSecp256k1_ParseElement_Rejects(t *testing.T) {
	g := NewSecp256k1()

	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not hex", "zz"},
		{"wrong length", "02abcd"},
		{"off curve", "020000000000000000000000000000000000000000000000000000000000000007"},
		{"infinity encoding", "00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := g.ParseElement(tc.in); !errors.Is(err, ErrInvalidPoint) {
				t.Fatalf("expected ErrInvalidPoint, got %v", err)
			}
		})
	}
}

func TestSecp256k1_SchnorrIdentity(t *testing.T) {
	// s*G must equal R + c*Y for an honest response s = k + c*x mod n.
	g := NewSecp256k1()

	x := &bigScalar{v: big.NewInt(874586)}
	k := &bigScalar{v: big.NewInt(1230987)}
	c, err := g.RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar error: %v", err)
	}

	Y := g.ScalarBaseMult(x)
	R := g.ScalarBaseMult(k)

	sv := new(big.Int).Mul(c.BigInt(), x.BigInt())
	sv.Add(sv, k.BigInt())
	sv.Mod(sv, g.Order())
	s := &bigScalar{v: sv}

	left := g.ScalarBaseMult(s)
	right := g.Add(R, g.ScalarMult(Y, c))
	if !left.Equal(right) {
		t.Fatalf("s*G != R + c*Y")
	}

	// and a perturbed response must not satisfy the equation
	bad := &bigScalar{v: new(big.Int).Add(sv, big.NewInt(1))}
	if g.ScalarBaseMult(bad).Equal(right) {
		t.Fatalf("perturbed response still satisfies the equation")
	}
}

func TestSecp256k1_RandomScalar_InRange(t *testing.T) {
	g := NewSecp256k1()
	for i := 0; i < 32; i++ {
		s, err := g.RandomScalar()
		if err != nil {
			t.Fatalf("RandomScalar error: %v", err)
		}
		if s.BigInt().Sign() < 0 || s.BigInt().Cmp(g.Order()) >= 0 {
			t.Fatalf("scalar out of range: %v", s.BigInt())
		}
	}
}

func TestSecp256k1_ElementEncodeRoundTrip(t *testing.T) {
	g := NewSecp256k1()
	s, err := g.ParseScalar("0badc0de")
	if err != nil {
		t.Fatalf("ParseScalar error: %v", err)
	}
	p := g.ScalarBaseMult(s)
	q, err := g.ParseElement(p.Encode())
	if err != nil {
		t.Fatalf("ParseElement error: %v", err)
	}
	if !p.Equal(q) {
		t.Fatalf("encode/parse round trip lost the point")
	}
}
