package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/sonarauth/internal/logging"
	pb "github.com/dmitrijs2005/sonarauth/internal/proto"
	"google.golang.org/grpc"
)

// authEngine is the slice of the identification engine the transport
// layer needs. Declared here so handlers can be tested against a fake.
type authEngine interface {
	Register(ctx context.Context, username, pubKey string) error
	IssueChallenge(ctx context.Context, username, commitment string) (string, error)
	Verify(ctx context.Context, username, response string) (string, error)
	ValidateCredential(ctx context.Context, credential string) (string, error)
	Unregister(ctx context.Context, username string) error
}

type GRPCServer struct {
	pb.UnimplementedSonarAuthServiceServer
	address string
	engine  authEngine
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, e authEngine) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		engine:  e,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterSonarAuthServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
