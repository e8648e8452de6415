package domain

import "math"

// MaxLamports is the largest balance an account can hold
const MaxLamports uint64 = math.MaxUint64

// SubLamports returns balance-amount, or ErrInsufficientFunds if the result would go negative
func SubLamports(balance, amount uint64) (uint64, error) {
	if amount > balance {
		return 0, ErrInsufficientFunds
	}
	return balance - amount, nil
}

// AddLamports returns balance+amount, or ErrBalanceOverflow if the result exceeds MaxLamports
func AddLamports(balance, amount uint64) (uint64, error) {
	if amount > MaxLamports-balance {
		return 0, ErrBalanceOverflow
	}
	return balance + amount, nil
}
