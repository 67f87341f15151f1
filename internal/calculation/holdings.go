package calculation

import (
	"strings"
	"time"

	"github.com/finch/networth/internal/domain"
	money "github.com/finch/networth/pkg/decimal"
)

// AccountAssetClass maps an aggregator account type to the asset class it is modelled as.
// All investment accounts count as broad equity.
func AccountAssetClass(accountType string) domain.AssetClass {
	switch strings.ToLower(accountType) {
	case "depository":
		return domain.Cash
	case "credit", "loan":
		return domain.Loan
	case "investment":
		return domain.Equity
	default:
		return domain.Cash
	}
}

// AllocationFromAccounts derives a "Current Holdings" allocation dated now from linked
// account balances: each account becomes an entry with its share of netWorth and the
// default APY of its class. Without positive net worth everything is treated as cash.
func AllocationFromAccounts(accounts []domain.AccountBalance, netWorth money.Money, now time.Time) domain.Allocation {
	alloc := domain.Allocation{
		Date:        now.Unix(),
		Description: "Current Holdings",
	}
	if !netWorth.IsPositive() || len(accounts) == 0 {
		alloc.Schema = []domain.AllocationEntry{{
			Name:                  "depository",
			AssetClass:            domain.Cash,
			AnnualizedPerformance: domain.DefaultAPY(domain.Cash),
			Proportion:            decimalHundred,
		}}
		return alloc
	}
	for _, a := range accounts {
		class := AccountAssetClass(a.Type)
		alloc.Schema = append(alloc.Schema, domain.AllocationEntry{
			Name:                  a.Type,
			AssetClass:            class,
			AnnualizedPerformance: domain.DefaultAPY(class),
			Proportion:            a.Balance.Decimal.Div(netWorth.Decimal).Mul(decimalHundred),
		})
	}
	return alloc
}
