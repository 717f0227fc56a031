package model

import (
	"math"
	"testing"
)

func TestBalance(t *testing.T) {
	r := YearRecord{TotalRevenue: 50, TotalExpense: 42}
	if got := r.Balance(); got != 8 {
		t.Errorf("Balance = %f, want 8", got)
	}

	r = YearRecord{TotalRevenue: 40, TotalExpense: 55}
	if got := r.Balance(); got != -15 {
		t.Errorf("Balance = %f, want -15", got)
	}
}

func TestBalancePercent(t *testing.T) {
	r := YearRecord{TotalRevenue: 50, TotalExpense: 45}
	if got := r.BalancePercent(); math.Abs(got-10) > 1e-9 {
		t.Errorf("BalancePercent = %f, want 10", got)
	}
}

func TestBalancePercent_ZeroRevenue(t *testing.T) {
	r := YearRecord{TotalRevenue: 0, TotalExpense: 10}
	if got := r.BalancePercent(); got != 0 {
		t.Errorf("BalancePercent = %f, want 0 for zero revenue", got)
	}
}
