package ledger

import (
	"github.com/shopspring/decimal"

	"nestegg/internal/models"
)

// Summary aggregates a list of ledger entries into totals per direction.
// NetFlow is TotalDeposits − TotalWithdrawals for every scope, single-goal
// and all-goals alike.
type Summary struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	DepositCount     int             `json:"deposit_count"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	WithdrawalCount  int             `json:"withdrawal_count"`
	NetFlow          decimal.Decimal `json:"net_flow"`
}

// Summarize reduces the entries to a Summary. The result depends only on
// the multiset of entries, not their order.
func Summarize(entries []models.GoalTransaction) Summary {
	s := Summary{
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
	}

	for _, e := range entries {
		switch e.Type {
		case models.TransactionTypeDeposit:
			s.TotalDeposits = s.TotalDeposits.Add(e.Amount)
			s.DepositCount++
		case models.TransactionTypeWithdrawal:
			s.TotalWithdrawals = s.TotalWithdrawals.Add(e.Amount)
			s.WithdrawalCount++
		}
	}

	s.NetFlow = s.TotalDeposits.Sub(s.TotalWithdrawals)
	return s
}
