package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sonarauth/internal/common"
	pb "github.com/dmitrijs2005/sonarauth/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// authFailed is the single message returned for every identification
// miss. Unknown username, missing challenge and a wrong proof must be
// indistinguishable to the caller.
var authFailed = status.Error(codes.Unauthenticated, "authentication failed")

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	err := s.engine.Register(ctx, req.Username, req.PubKey)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidUsername), errors.Is(err, common.ErrMalformedKey):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, common.ErrAlreadyRegistered):
			return nil, status.Error(codes.AlreadyExists, err.Error())
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterResponse{Status: "registered"}, nil

}

func (s *GRPCServer) Challenge(ctx context.Context, req *pb.ChallengeRequest) (*pb.ChallengeResponse, error) {

	c, err := s.engine.IssueChallenge(ctx, req.Username, req.R)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownUser):
			return nil, authFailed
		case errors.Is(err, common.ErrInvalidCommitment):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.ChallengeResponse{C: c}, nil

}

func (s *GRPCServer) Verify(ctx context.Context, req *pb.VerifyRequest) (*pb.VerifyResponse, error) {

	token, err := s.engine.Verify(ctx, req.Username, req.S)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownUser),
			errors.Is(err, common.ErrNoPendingChallenge),
			errors.Is(err, common.ErrProofRejected):
			return nil, authFailed
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Verified", "username", req.Username)
	return &pb.VerifyResponse{Status: "OK", AccessToken: token}, nil

}

func (s *GRPCServer) ValidateToken(ctx context.Context, req *pb.ValidateTokenRequest) (*pb.ValidateTokenResponse, error) {

	username, err := s.engine.ValidateCredential(ctx, req.AccessToken)

	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) {
			return &pb.ValidateTokenResponse{Valid: false}, nil
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.ValidateTokenResponse{Valid: true, Username: username}, nil

}

func (s *GRPCServer) Unregister(ctx context.Context, req *pb.UnregisterRequest) (*pb.UnregisterResponse, error) {

	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.engine.Unregister(ctx, username); err != nil {
		if errors.Is(err, common.ErrUnknownUser) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.UnregisterResponse{Status: "unregistered"}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
