// Package client wraps the generated gRPC stubs behind a small API the
// CLI talks to. It owns the connection, carries the bearer credential
// obtained from a successful login, and maps transport status codes to
// package-level sentinel errors.
package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	pb "github.com/dmitrijs2005/sonarauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SonarAuthServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current credential to every
// outgoing call. Calls made before login simply carry an empty value,
// which the server ignores for unprotected methods.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withAccessToken(ctx, s.accessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewSonarAuthClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewSonarAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, pubKey string) error {

	req := &pb.RegisterRequest{Username: userName, PubKey: pubKey}

	_, err := s.client.Register(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

// Challenge sends the commitment R and returns the challenge scalar c.
func (s *GRPCClient) Challenge(ctx context.Context, userName string, r string) (string, error) {

	req := &pb.ChallengeRequest{Username: userName, R: r}

	resp, err := s.client.Challenge(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}
	return resp.C, nil
}

// Verify submits the response scalar. On success the returned credential
// is retained and attached to subsequent calls.
func (s *GRPCClient) Verify(ctx context.Context, userName string, response string) error {

	req := &pb.VerifyRequest{Username: userName, S: response}

	resp, err := s.client.Verify(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = resp.AccessToken

	return nil

}

// ValidateToken asks the server whether the current credential is still
// good and returns the username it is bound to.
func (s *GRPCClient) ValidateToken(ctx context.Context) (string, error) {

	req := &pb.ValidateTokenRequest{AccessToken: s.accessToken}

	resp, err := s.client.ValidateToken(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	if !resp.Valid {
		return "", ErrUnauthorized
	}

	return resp.Username, nil

}

func (s *GRPCClient) Unregister(ctx context.Context) error {

	req := &pb.UnregisterRequest{}

	_, err := s.client.Unregister(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	s.accessToken = ""

	return nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	req := &pb.PingRequest{}

	resp, err := s.client.Ping(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrUsernameTaken
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrBadRequest, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
