package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	pb "github.com/dmitrijs2005/sonarauth/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	// inputs captured
	lastRegisterReq  *pb.RegisterRequest
	lastChallengeReq *pb.ChallengeRequest
	lastVerifyReq    *pb.VerifyRequest
	lastValidateReq  *pb.ValidateTokenRequest
	lastPingReq      *pb.PingRequest

	// outputs preset
	registerErr error

	challengeResp *pb.ChallengeResponse
	challengeErr  error

	verifyResp *pb.VerifyResponse
	verifyErr  error

	validateResp *pb.ValidateTokenResponse
	validateErr  error

	unregisterErr error

	pingResp *pb.PingResponse
	pingErr  error
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	return &pb.RegisterResponse{}, f.registerErr
}
func (f *fakePB) Challenge(ctx context.Context, in *pb.ChallengeRequest, opts ...grpc.CallOption) (*pb.ChallengeResponse, error) {
	f.lastChallengeReq = in
	return f.challengeResp, f.challengeErr
}
func (f *fakePB) Verify(ctx context.Context, in *pb.VerifyRequest, opts ...grpc.CallOption) (*pb.VerifyResponse, error) {
	f.lastVerifyReq = in
	return f.verifyResp, f.verifyErr
}
func (f *fakePB) ValidateToken(ctx context.Context, in *pb.ValidateTokenRequest, opts ...grpc.CallOption) (*pb.ValidateTokenResponse, error) {
	f.lastValidateReq = in
	return f.validateResp, f.validateErr
}
func (f *fakePB) Unregister(ctx context.Context, in *pb.UnregisterRequest, opts ...grpc.CallOption) (*pb.UnregisterResponse, error) {
	return &pb.UnregisterResponse{}, f.unregisterErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	f.lastPingReq = in
	return f.pingResp, f.pingErr
}

/*************
 * interceptor tests
 *************/

func TestInterceptor_AttachesAccessToken(t *testing.T) {
	c := &GRPCClient{accessToken: "tok-1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)
		require.Equal(t, "tok-1", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
}

func TestInterceptor_ReplacesStaleHeader(t *testing.T) {
	c := &GRPCClient{accessToken: "fresh"}

	ctx := metadata.NewOutgoingContext(context.Background(),
		metadata.New(map[string]string{common.AccessTokenHeaderName: "stale"}))

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)
		require.Equal(t, "fresh", toks[0])
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

/*************
 * method tests
 *************/

func TestRegister_PassesFields(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	err := c.Register(context.Background(), "alice", "02ab")
	require.NoError(t, err)
	require.Equal(t, "alice", f.lastRegisterReq.Username)
	require.Equal(t, "02ab", f.lastRegisterReq.PubKey)
}

func TestRegister_MapsAlreadyExists(t *testing.T) {
	f := &fakePB{registerErr: status.Error(codes.AlreadyExists, "taken")}
	c := &GRPCClient{client: f}

	err := c.Register(context.Background(), "alice", "02ab")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestChallenge_ReturnsScalar(t *testing.T) {
	f := &fakePB{challengeResp: &pb.ChallengeResponse{C: "0c"}}
	c := &GRPCClient{client: f}

	got, err := c.Challenge(context.Background(), "alice", "02aa")
	require.NoError(t, err)
	assert.Equal(t, "0c", got)
	assert.Equal(t, "02aa", f.lastChallengeReq.R)
}

func TestVerify_StoresToken(t *testing.T) {
	f := &fakePB{verifyResp: &pb.VerifyResponse{Status: "OK", AccessToken: "jwt"}}
	c := &GRPCClient{client: f}

	err := c.Verify(context.Background(), "alice", "0f")
	require.NoError(t, err)
	assert.Equal(t, "jwt", c.accessToken)
}

func TestVerify_MapsUnauthenticated(t *testing.T) {
	f := &fakePB{verifyErr: status.Error(codes.Unauthenticated, "authentication failed")}
	c := &GRPCClient{client: f}

	err := c.Verify(context.Background(), "alice", "0f")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.accessToken)
}

func TestValidateToken(t *testing.T) {
	f := &fakePB{validateResp: &pb.ValidateTokenResponse{Valid: true, Username: "alice"}}
	c := &GRPCClient{client: f, accessToken: "jwt"}

	username, err := c.ValidateToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "jwt", f.lastValidateReq.AccessToken)

	f.validateResp = &pb.ValidateTokenResponse{Valid: false}
	_, err = c.ValidateToken(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUnregister_ClearsToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "jwt"}

	require.NoError(t, c.Unregister(context.Background()))
	assert.Empty(t, c.accessToken)
}

func TestPing(t *testing.T) {
	f := &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Ping(context.Background()))

	f.pingErr = status.Error(codes.Unavailable, "down")
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), ErrUsernameTaken)
	assert.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "x")), ErrBadRequest)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)

	err := c.mapError(errors.New("plain"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
