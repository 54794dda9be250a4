package group

import (
	"errors"
	"math/big"
	"testing"
)

func TestModAdd_WorkedExample(t *testing.T) {
	// n = 23, G = 1, x = 7: R = 3 for k = 3, c = 5 gives the honest
	// response s = (3 + 5*7) mod 23 = 15.
	g := NewModAdd(23)

	x := &bigScalar{v: big.NewInt(7)}
	k := &bigScalar{v: big.NewInt(3)}
	c := &bigScalar{v: big.NewInt(5)}
	s := &bigScalar{v: big.NewInt(15)}

	Y := g.ScalarBaseMult(x)
	R := g.ScalarBaseMult(k)

	left := g.ScalarBaseMult(s)
	right := g.Add(R, g.ScalarMult(Y, c))
	if !left.Equal(right) {
		t.Fatalf("honest response rejected: %s != %s", left.Encode(), right.Encode())
	}

	bad := &bigScalar{v: big.NewInt(10)}
	if g.ScalarBaseMult(bad).Equal(right) {
		t.Fatalf("dishonest response accepted")
	}
}

func TestModAdd_ParseAndIdentity(t *testing.T) {
	g := NewModAdd(23)

	zero, err := g.ParseElement("00")
	if err != nil {
		t.Fatalf("ParseElement error: %v", err)
	}
	if !zero.IsIdentity() {
		t.Fatalf("0 should be the identity element")
	}

	// values parse reduced mod n: 0x18 = 24 ≡ 1
	one, err := g.ParseElement("18")
	if err != nil {
		t.Fatalf("ParseElement error: %v", err)
	}
	gen, _ := g.ParseElement("01")
	if !one.Equal(gen) {
		t.Fatalf("expected reduction mod n on parse")
	}

	if _, err := g.ParseElement("xyz"); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("expected ErrInvalidPoint, got %v", err)
	}
	if _, err := g.ParseScalar(""); !errors.Is(err, ErrInvalidScalar) {
		t.Fatalf("expected ErrInvalidScalar, got %v", err)
	}
}
