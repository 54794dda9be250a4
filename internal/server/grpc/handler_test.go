package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	pb "github.com/dmitrijs2005/sonarauth/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ---- fakes ----

type fakeEngine struct {
	regErr error

	challengeResp string
	challengeErr  error

	verifyResp string
	verifyErr  error

	validateResp string
	validateErr  error

	unregErr       error
	unregUsernames []string
}

func (f *fakeEngine) Register(ctx context.Context, username, pubKey string) error {
	return f.regErr
}
func (f *fakeEngine) IssueChallenge(ctx context.Context, username, commitment string) (string, error) {
	return f.challengeResp, f.challengeErr
}
func (f *fakeEngine) Verify(ctx context.Context, username, response string) (string, error) {
	return f.verifyResp, f.verifyErr
}
func (f *fakeEngine) ValidateCredential(ctx context.Context, credential string) (string, error) {
	return f.validateResp, f.validateErr
}
func (f *fakeEngine) Unregister(ctx context.Context, username string) error {
	f.unregUsernames = append(f.unregUsernames, username)
	return f.unregErr
}

// ---- helpers ----

func newServer(e authEngine) *GRPCServer {
	return &GRPCServer{
		address: "127.0.0.1:0",
		engine:  e,
		logger:  nopLogger{},
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeEngine{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_OK(t *testing.T) {
	s := newServer(&fakeEngine{})
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", PubKey: "02ab"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.GetStatus() != "registered" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegister_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"empty username", common.ErrInvalidUsername, codes.InvalidArgument},
		{"malformed key", common.ErrMalformedKey, codes.InvalidArgument},
		{"taken username", common.ErrAlreadyRegistered, codes.AlreadyExists},
		{"storage down", errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newServer(&fakeEngine{regErr: tc.err})
			_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "alice", PubKey: "02ab"})
			if status.Code(err) != tc.want {
				t.Fatalf("want %v, got %v (err=%v)", tc.want, status.Code(err), err)
			}
		})
	}
}

func TestChallenge_OK(t *testing.T) {
	s := newServer(&fakeEngine{challengeResp: "0c"})
	resp, err := s.Challenge(context.Background(), &pb.ChallengeRequest{Username: "alice", R: "02aa"})
	if err != nil {
		t.Fatalf("Challenge error: %v", err)
	}
	if resp.GetC() != "0c" {
		t.Fatalf("unexpected challenge: %q", resp.GetC())
	}
}

func TestChallenge_UnknownUserIsUniform(t *testing.T) {
	s := newServer(&fakeEngine{challengeErr: common.ErrUnknownUser})
	_, err := s.Challenge(context.Background(), &pb.ChallengeRequest{Username: "ghost", R: "02aa"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "authentication failed" {
		t.Fatalf("unexpected message: %q", status.Convert(err).Message())
	}
}

func TestChallenge_InvalidCommitmentAndInternal(t *testing.T) {
	s := newServer(&fakeEngine{challengeErr: common.ErrInvalidCommitment})
	_, err := s.Challenge(context.Background(), &pb.ChallengeRequest{Username: "alice", R: "zz"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("want InvalidArgument, got %v", status.Code(err))
	}

	s2 := newServer(&fakeEngine{challengeErr: errors.New("boom")})
	_, err = s2.Challenge(context.Background(), &pb.ChallengeRequest{Username: "alice", R: "02aa"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestVerify_OK(t *testing.T) {
	s := newServer(&fakeEngine{verifyResp: "jwt-token"})
	resp, err := s.Verify(context.Background(), &pb.VerifyRequest{Username: "alice", S: "0f"})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if resp.GetAccessToken() != "jwt-token" {
		t.Fatalf("unexpected token: %q", resp.GetAccessToken())
	}
}

// Every identification miss must come back as the same status and
// message, so a caller cannot probe which step failed.
func TestVerify_FailuresAreUniform(t *testing.T) {
	for _, engineErr := range []error{
		common.ErrUnknownUser,
		common.ErrNoPendingChallenge,
		common.ErrProofRejected,
	} {
		s := newServer(&fakeEngine{verifyErr: engineErr})
		_, err := s.Verify(context.Background(), &pb.VerifyRequest{Username: "alice", S: "0f"})
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("engine err %v: want Unauthenticated, got %v", engineErr, status.Code(err))
		}
		if status.Convert(err).Message() != "authentication failed" {
			t.Fatalf("engine err %v: unexpected message %q", engineErr, status.Convert(err).Message())
		}
	}
}

func TestVerify_InternalOnError(t *testing.T) {
	s := newServer(&fakeEngine{verifyErr: errors.New("boom")})
	_, err := s.Verify(context.Background(), &pb.VerifyRequest{Username: "alice", S: "0f"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestValidateToken_Valid(t *testing.T) {
	s := newServer(&fakeEngine{validateResp: "alice"})
	resp, err := s.ValidateToken(context.Background(), &pb.ValidateTokenRequest{AccessToken: "tok"})
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if !resp.GetValid() || resp.GetUsername() != "alice" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestValidateToken_InvalidAndExpired(t *testing.T) {
	for _, engineErr := range []error{common.ErrInvalidToken, common.ErrTokenExpired} {
		s := newServer(&fakeEngine{validateErr: engineErr})
		resp, err := s.ValidateToken(context.Background(), &pb.ValidateTokenRequest{AccessToken: "tok"})
		if err != nil {
			t.Fatalf("engine err %v: unexpected transport error: %v", engineErr, err)
		}
		if resp.GetValid() {
			t.Fatalf("engine err %v: token reported valid", engineErr)
		}
	}
}

func TestValidateToken_InternalOnError(t *testing.T) {
	s := newServer(&fakeEngine{validateErr: errors.New("boom")})
	_, err := s.ValidateToken(context.Background(), &pb.ValidateTokenRequest{AccessToken: "tok"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", status.Code(err))
	}
}

func TestUnregister_OK(t *testing.T) {
	e := &fakeEngine{}
	s := newServer(e)
	ctx := context.WithValue(context.Background(), usernameKey, "alice")
	resp, err := s.Unregister(ctx, &pb.UnregisterRequest{})
	if err != nil {
		t.Fatalf("Unregister error: %v", err)
	}
	if resp.GetStatus() != "unregistered" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
	if len(e.unregUsernames) != 1 || e.unregUsernames[0] != "alice" {
		t.Fatalf("engine called with wrong username: %v", e.unregUsernames)
	}
}

func TestUnregister_MissingContextUsername(t *testing.T) {
	s := newServer(&fakeEngine{})
	_, err := s.Unregister(context.Background(), &pb.UnregisterRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestUnregister_UnknownUser(t *testing.T) {
	s := newServer(&fakeEngine{unregErr: common.ErrUnknownUser})
	ctx := context.WithValue(context.Background(), usernameKey, "alice")
	_, err := s.Unregister(ctx, &pb.UnregisterRequest{})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}
