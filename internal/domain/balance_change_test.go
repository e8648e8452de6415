package domain

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
)

func TestValidateConservation(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	recipient := solana.NewWallet().PublicKey()

	tests := []struct {
		name    string
		changes []BalanceChange
		wantErr bool
		errMsg  string
	}{
		{
			name: "Balanced debit and credit should pass",
			changes: []BalanceChange{
				{Account: payer, Amount: 30, Type: EntryTypeDebit, Before: 100, After: 70},
				{Account: recipient, Amount: 30, Type: EntryTypeCredit, Before: 50, After: 80},
			},
			wantErr: false,
		},
		{
			name: "Balances at the uint64 edge should pass",
			changes: []BalanceChange{
				{Account: payer, Amount: MaxLamports, Type: EntryTypeDebit, Before: MaxLamports, After: 0},
				{Account: recipient, Amount: MaxLamports, Type: EntryTypeCredit, Before: 0, After: MaxLamports},
			},
			wantErr: false,
		},
		{
			name:    "No changes should fail",
			changes: []BalanceChange{},
			wantErr: true,
			errMsg:  "transfer must have at least one balance change",
		},
		{
			name: "Unbalanced amounts should fail",
			changes: []BalanceChange{
				{Account: payer, Amount: 30, Type: EntryTypeDebit, Before: 100, After: 70},
				{Account: recipient, Amount: 20, Type: EntryTypeCredit, Before: 50, After: 70},
			},
			wantErr: true,
			errMsg:  "sum of debits must equal sum of credits",
		},
		{
			name: "Debit that does not match its balances should fail",
			changes: []BalanceChange{
				{Account: payer, Amount: 30, Type: EntryTypeDebit, Before: 100, After: 80},
				{Account: recipient, Amount: 30, Type: EntryTypeCredit, Before: 50, After: 80},
			},
			wantErr: true,
		},
		{
			name: "Credit that does not match its balances should fail",
			changes: []BalanceChange{
				{Account: payer, Amount: 30, Type: EntryTypeDebit, Before: 100, After: 70},
				{Account: recipient, Amount: 30, Type: EntryTypeCredit, Before: 50, After: 90},
			},
			wantErr: true,
		},
		{
			name: "Zero amount should fail",
			changes: []BalanceChange{
				{Account: payer, Amount: 0, Type: EntryTypeDebit, Before: 100, After: 100},
			},
			wantErr: true,
			errMsg:  "balance change amount must be positive",
		},
		{
			name: "Invalid entry type should fail",
			changes: []BalanceChange{
				{Account: payer, Amount: 10, Type: EntryType("INVALID"), Before: 100, After: 90},
			},
			wantErr: true,
			errMsg:  "entry type must be DEBIT or CREDIT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConservation(tt.changes)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Equal(t, tt.errMsg, err.Error())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLamportArithmetic(t *testing.T) {
	got, err := SubLamports(100, 30)
	assert.NoError(t, err)
	assert.Equal(t, uint64(70), got)

	_, err = SubLamports(10, 50)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	got, err = AddLamports(MaxLamports-1, 1)
	assert.NoError(t, err)
	assert.Equal(t, MaxLamports, got)

	_, err = AddLamports(MaxLamports, 1)
	assert.ErrorIs(t, err, ErrBalanceOverflow)
}
