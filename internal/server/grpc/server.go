package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/tidemill/haulbatch/internal/logging"
	pb "github.com/tidemill/haulbatch/internal/proto"
	"github.com/tidemill/haulbatch/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedBatcherServiceServer
	address    string
	ledger     *services.LedgerService
	settlement *services.SettlementService
	admin      *services.AdminService
	logger     logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ls *services.LedgerService, ss *services.SettlementService, as *services.AdminService) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		ledger:     ls,
		settlement: ss,
		admin:      as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.callerInterceptor))

	// registers service
	pb.RegisterBatcherServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
