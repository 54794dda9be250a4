// Package engine implements the Schnorr identification protocol: it is
// the only place that touches the verification equation, the challenge
// lifecycle, and the decision to mint a credential. Everything it talks
// to (registry, ledger, group, logger) is injected, so the whole flow is
// testable against in-memory fakes and a toy group.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	"github.com/dmitrijs2005/sonarauth/internal/group"
	"github.com/dmitrijs2005/sonarauth/internal/logging"
	"github.com/dmitrijs2005/sonarauth/internal/server/auth"
	"github.com/dmitrijs2005/sonarauth/internal/server/config"
	"github.com/dmitrijs2005/sonarauth/internal/server/ledger"
	"github.com/dmitrijs2005/sonarauth/internal/server/registry"
)

type Service struct {
	registry           registry.Repository
	ledger             ledger.Ledger
	group              group.Group
	logger             logging.Logger
	secretKey          []byte
	challengeTTL       time.Duration
	credentialValidity time.Duration
}

func NewService(reg registry.Repository, led ledger.Ledger, grp group.Group, l logging.Logger, cfg *config.Config) *Service {
	return &Service{
		registry:           reg,
		ledger:             led,
		group:              grp,
		logger:             l.With("module", "engine"),
		secretKey:          []byte(cfg.SecretKey),
		challengeTTL:       cfg.ChallengeTTL,
		credentialValidity: cfg.CredentialValidityDuration,
	}
}

// Register stores a new identity. The key must decode to a valid
// non-identity group element before anything is written; a taken
// username fails with ErrAlreadyRegistered and leaves the original
// entry untouched. The challenge ledger is not involved.
func (s *Service) Register(ctx context.Context, username, pubKey string) error {

	if username == "" {
		return common.ErrInvalidUsername
	}

	y, err := s.group.ParseElement(pubKey)
	if err != nil || y.IsIdentity() {
		return common.ErrMalformedKey
	}

	identity := &registry.Identity{Username: username, PubKey: y.Encode()}
	if err := s.registry.Insert(ctx, identity); err != nil {
		if errors.Is(err, common.ErrAlreadyRegistered) {
			return common.ErrAlreadyRegistered
		}
		s.logger.Error(ctx, "registry insert failed", "error", err.Error())
		return common.ErrorInternal
	}

	return nil
}

// IssueChallenge validates the client's commitment R, draws a fresh
// challenge scalar and stores the pair with the configured TTL,
// unconditionally replacing any pending challenge for the username.
// Returns the challenge encoding handed back to the client.
func (s *Service) IssueChallenge(ctx context.Context, username, commitment string) (string, error) {

	if _, err := s.registry.Get(ctx, username); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUnknownUser
		}
		s.logger.Error(ctx, "registry read failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	// reject degenerate commitments before any state changes: an
	// off-curve R is garbage, the identity R makes the proof trivial
	r, err := s.group.ParseElement(commitment)
	if err != nil || r.IsIdentity() {
		return "", common.ErrInvalidCommitment
	}

	c, err := s.group.RandomScalar()
	if err != nil {
		s.logger.Error(ctx, "challenge generation failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	challenge := &ledger.Challenge{
		Username: username,
		R:        r.Encode(),
		C:        c.Encode(),
	}
	if err := s.ledger.Put(ctx, challenge, s.challengeTTL); err != nil {
		s.logger.Error(ctx, "ledger write failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	return c.Encode(), nil
}

// Verify consumes the pending challenge for username and checks the
// client's response against
//
//	s*G == R + c*Y
//
// The challenge is removed the moment it is found, before the equation
// is evaluated, so a second call always misses no matter how the first
// one ended. On success a bearer credential is minted; on inequality the
// caller learns only ErrProofRejected.
func (s *Service) Verify(ctx context.Context, username, response string) (string, error) {

	// an undecodable response is rejected before any state is touched,
	// leaving the pending challenge live for a corrected retry
	sc, err := s.group.ParseScalar(response)
	if err != nil {
		return "", common.ErrProofRejected
	}

	identity, err := s.registry.Get(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUnknownUser
		}
		s.logger.Error(ctx, "registry read failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	challenge, err := s.ledger.TakeIfPresent(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// never issued, expired, or already consumed: deliberately
			// indistinguishable
			return "", common.ErrNoPendingChallenge
		}
		s.logger.Error(ctx, "ledger take failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	// from here on the challenge is gone; no failure path re-arms it

	y, err := s.group.ParseElement(identity.PubKey)
	if err != nil {
		s.logger.Error(ctx, "stored public key no longer parses", "username", username)
		return "", common.ErrorInternal
	}
	r, err := s.group.ParseElement(challenge.R)
	if err != nil {
		s.logger.Error(ctx, "stored commitment no longer parses", "username", username)
		return "", common.ErrorInternal
	}
	c, err := s.group.ParseScalar(challenge.C)
	if err != nil {
		s.logger.Error(ctx, "stored challenge no longer parses", "username", username)
		return "", common.ErrorInternal
	}

	left := s.group.ScalarBaseMult(sc)
	right := s.group.Add(r, s.group.ScalarMult(y, c))

	if !left.Equal(right) {
		// signal for external rate limiting; the caller only sees the
		// uniform rejection
		s.logger.Warn(ctx, "proof rejected", "username", username)
		return "", common.ErrProofRejected
	}

	credential, err := auth.GenerateToken(username, s.secretKey, s.credentialValidity)
	if err != nil {
		s.logger.Error(ctx, "credential mint failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	return credential, nil
}

// ValidateCredential checks the credential's integrity tag and expiry,
// then re-checks that the identity still exists, so removing an identity
// immediately invalidates its outstanding credentials.
func (s *Service) ValidateCredential(ctx context.Context, credential string) (string, error) {

	username, err := auth.GetUsernameFromToken(credential, s.secretKey)
	if err != nil {
		return "", err
	}

	if _, err := s.registry.Get(ctx, username); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidToken
		}
		s.logger.Error(ctx, "registry read failed", "error", err.Error())
		return "", common.ErrorInternal
	}

	return username, nil
}

// Unregister removes an identity. Outstanding credentials for it fail
// validation from this point on.
func (s *Service) Unregister(ctx context.Context, username string) error {

	if err := s.registry.Delete(ctx, username); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUnknownUser
		}
		s.logger.Error(ctx, "registry delete failed", "error", err.Error())
		return common.ErrorInternal
	}

	s.logger.Info(ctx, "identity removed", "username", username)
	return nil
}
