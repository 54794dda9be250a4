// Package prover implements the client half of the identification
// protocol: identity key generation, the commitment that opens a login
// attempt, and the response to the server's challenge.
package prover

import (
	"encoding/hex"
	"math/big"

	"github.com/dmitrijs2005/sonarauth/internal/group"
)

// Keypair is a freshly generated identity. PrivKey is the secret scalar
// x, PubKey the element x*G, both in the group's hex encoding.
type Keypair struct {
	PrivKey string
	PubKey  string
}

func GenerateKeypair(g group.Group) (*Keypair, error) {
	x, err := g.RandomScalar()
	if err != nil {
		return nil, err
	}
	y := g.ScalarBaseMult(x)
	return &Keypair{PrivKey: x.Encode(), PubKey: y.Encode()}, nil
}

// Commitment is the opening move of one login attempt. The nonce k
// stays private and must be used for exactly one response.
type Commitment struct {
	k group.Scalar

	// R is the encoded public commitment k*G sent to the server.
	R string
}

func Commit(g group.Group) (*Commitment, error) {
	k, err := g.RandomScalar()
	if err != nil {
		return nil, err
	}
	r := g.ScalarBaseMult(k)
	return &Commitment{k: k, R: r.Encode()}, nil
}

// Respond computes s = k + c*x mod the group order for the challenge c
// received from the server.
func Respond(g group.Group, com *Commitment, challenge, privKey string) (string, error) {

	c, err := g.ParseScalar(challenge)
	if err != nil {
		return "", err
	}
	x, err := g.ParseScalar(privKey)
	if err != nil {
		return "", err
	}

	v := new(big.Int).Mul(c.BigInt(), x.BigInt())
	v.Add(v, com.k.BigInt())
	v.Mod(v, g.Order())

	s, err := g.ParseScalar(encodeHex(v))
	if err != nil {
		return "", err
	}
	return s.Encode(), nil
}

// encodeHex renders v as an even-length hex string so it survives a
// strict hex.DecodeString round trip.
func encodeHex(v *big.Int) string {
	b := v.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	return hex.EncodeToString(b)
}
