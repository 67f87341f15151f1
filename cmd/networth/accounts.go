package main

import (
	"context"
	"fmt"
	"os"

	"github.com/finch/networth/internal/config"
	"github.com/finch/networth/internal/domain"
	money "github.com/finch/networth/pkg/decimal"
)

// accountsFile reads linked account balances from a local document:
//
//	accounts:
//	  - {id: chk, name: Checking, type: depository, balance: 1200}
//
// It stands in for an account aggregator as both the holdings and snapshot source.
type accountsFile struct {
	path string
}

type accountsDocument struct {
	Accounts []domain.AccountBalance `yaml:"accounts" json:"accounts" toml:"accounts"`
}

func (f *accountsFile) Accounts(_ context.Context) ([]domain.AccountBalance, error) {
	format, err := config.FormatForPath(f.path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	var doc accountsDocument
	if err := config.Decode(format, data, &doc); err != nil {
		return nil, err
	}
	return doc.Accounts, nil
}

// Snapshot measures net worth as the sum of all balances. Running totals are not
// known from balances alone and stay zero.
func (f *accountsFile) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	accounts, err := f.Accounts(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	total := money.Zero()
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return domain.Snapshot{NetWorth: total}, nil
}
