package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/transfer-sol/internal/domain"
	"github.com/simaogato/transfer-sol/internal/usecase/transfer"
)

// Server implements the TransferService gRPC server.
// It keeps no ledger: accounts arrive with each request and their
// post-transfer state is returned in the response.
type Server struct {
	Executor      *transfer.Executor
	SystemProgram domain.SystemTransferService
}

// NewServer creates a new gRPC server instance
func NewServer(executor *transfer.Executor, systemProgram domain.SystemTransferService) *Server {
	return &Server{
		Executor:      executor,
		SystemProgram: systemProgram,
	}
}

// TransferViaDelegation handles the TransferViaDelegation RPC
func (s *Server) TransferViaDelegation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := decodeTransferInput(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	receipt, err := s.Executor.TransferViaDelegation(ctx, input.Amount, input.Payer, input.Recipient, s.SystemProgram)
	if err != nil {
		return nil, mapError(err)
	}

	return encodeReceipt(receipt, input.Payer, input.Recipient), nil
}

// TransferViaDirectMutation handles the TransferViaDirectMutation RPC
func (s *Server) TransferViaDirectMutation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := decodeTransferInput(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	receipt, err := s.Executor.TransferViaDirectMutation(ctx, input.Amount, input.Payer, input.Recipient)
	if err != nil {
		return nil, mapError(err)
	}

	return encodeReceipt(receipt, input.Payer, input.Recipient), nil
}

// mapError maps domain errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	errorMsg := err.Error()

	switch {
	// Checked first: the service's own error may wrap a domain sentinel
	case errors.Is(err, domain.ErrDelegatedTransferFailed):
		return status.Error(codes.Aborted, errorMsg)
	case errors.Is(err, domain.ErrMissingSignature):
		return status.Error(codes.Unauthenticated, errorMsg)
	case errors.Is(err, domain.ErrOwnershipMismatch):
		return status.Error(codes.PermissionDenied, errorMsg)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, errorMsg)
	case errors.Is(err, domain.ErrBalanceOverflow):
		return status.Error(codes.OutOfRange, errorMsg)
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMissingAccount),
		errors.Is(err, domain.ErrDuplicateAccount),
		errors.Is(err, domain.ErrInvalidRecipient),
		errors.Is(err, domain.ErrAccountNotWritable),
		errors.Is(err, domain.ErrMissingTransferService):
		return status.Error(codes.InvalidArgument, errorMsg)
	}

	// Default to Internal error for unknown errors
	return status.Error(codes.Internal, errorMsg)
}

var _ TransferServiceServer = (*Server)(nil)
