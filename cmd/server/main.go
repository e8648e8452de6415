package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/transfer-sol/internal/adapter/grpc"
	"github.com/simaogato/transfer-sol/internal/adapter/logging"
	"github.com/simaogato/transfer-sol/internal/adapter/systemprogram"
	"github.com/simaogato/transfer-sol/internal/config"
	"github.com/simaogato/transfer-sol/internal/usecase/authorization"
	"github.com/simaogato/transfer-sol/internal/usecase/transfer"
)

func main() {
	// 1. Load configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// 2. Initialize the transfer policy layer
	gate := authorization.NewGate(cfg.ProgramID)
	executor, err := transfer.NewExecutor(gate, logger.Named("executor"))
	if err != nil {
		logger.Fatal("failed to build executor", zap.Error(err))
	}
	systemProgram := systemprogram.NewProgram(logger.Named("system_program"))

	// 3. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger.Named("rpc")),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	grpcadapter.RegisterTransferServiceServer(grpcServer, grpcadapter.NewServer(executor, systemProgram))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		logger.Info("gRPC server listening",
			zap.String("addr", cfg.GRPCAddr),
			zap.Stringer("program_id", cfg.ProgramID),
		)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("failed to serve gRPC server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("shutting down gracefully", zap.Stringer("signal", sig))

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")
}
