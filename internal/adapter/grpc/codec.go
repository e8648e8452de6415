package grpc

import (
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/transfer-sol/internal/domain"
)

// Request layout:
//
//	{
//	  "amount": "30",
//	  "payer":     {"address": "<base58>", "lamports": "100", "owner": "<base58>",
//	                "is_signer": true, "is_writable": true, "executable": false},
//	  "recipient": {...same fields...}
//	}
//
// Lamport values travel as decimal strings; structpb numbers are float64 and
// cannot carry the full uint64 range.

// transferInput is a decoded transfer request
type transferInput struct {
	Amount    uint64
	Payer     *domain.Account
	Recipient *domain.Account
}

func decodeTransferInput(req *structpb.Struct) (*transferInput, error) {
	if req == nil {
		return nil, fmt.Errorf("invalid request: empty body")
	}
	fields := req.GetFields()

	amount, err := parseLamports(fields["amount"], "amount")
	if err != nil {
		return nil, err
	}

	payer, err := decodeAccount(fields["payer"], "payer")
	if err != nil {
		return nil, err
	}

	recipient, err := decodeAccount(fields["recipient"], "recipient")
	if err != nil {
		return nil, err
	}

	return &transferInput{Amount: amount, Payer: payer, Recipient: recipient}, nil
}

func decodeAccount(v *structpb.Value, name string) (*domain.Account, error) {
	s := v.GetStructValue()
	if s == nil {
		return nil, fmt.Errorf("invalid %s: account object is required", name)
	}
	fields := s.GetFields()

	address, err := solana.PublicKeyFromBase58(fields["address"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("invalid %s.address: %w", name, err)
	}

	owner, err := solana.PublicKeyFromBase58(fields["owner"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("invalid %s.owner: %w", name, err)
	}

	lamports, err := parseLamports(fields["lamports"], name+".lamports")
	if err != nil {
		return nil, err
	}

	return &domain.Account{
		Address:    address,
		Lamports:   lamports,
		Owner:      owner,
		IsSigner:   fields["is_signer"].GetBoolValue(),
		IsWritable: fields["is_writable"].GetBoolValue(),
		Executable: fields["executable"].GetBoolValue(),
	}, nil
}

func parseLamports(v *structpb.Value, name string) (uint64, error) {
	raw := v.GetStringValue()
	if raw == "" {
		return 0, fmt.Errorf("invalid %s: decimal string is required", name)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %w", name, err)
	}
	return n, nil
}

func encodeAccount(a *domain.Account) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{
		Fields: map[string]*structpb.Value{
			"address":     structpb.NewStringValue(a.Address.String()),
			"lamports":    structpb.NewStringValue(strconv.FormatUint(a.Lamports, 10)),
			"sol":         structpb.NewStringValue(a.SOL().String()),
			"owner":       structpb.NewStringValue(a.Owner.String()),
			"is_signer":   structpb.NewBoolValue(a.IsSigner),
			"is_writable": structpb.NewBoolValue(a.IsWritable),
			"executable":  structpb.NewBoolValue(a.Executable),
		},
	})
}

func encodeReceipt(receipt *domain.TransferReceipt, payer, recipient *domain.Account) *structpb.Struct {
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"request_id": structpb.NewStringValue(receipt.RequestID.String()),
			"path":       structpb.NewStringValue(receipt.Path.String()),
			"state":      structpb.NewStringValue(string(receipt.State)),
			"amount":     structpb.NewStringValue(strconv.FormatUint(receipt.Amount, 10)),
			"payer":      encodeAccount(payer),
			"recipient":  encodeAccount(recipient),
		},
	}
}
