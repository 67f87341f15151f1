package domain

import (
	"testing"

	money "github.com/finch/networth/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecurringValidation(t *testing.T) {
	base := Recurring{
		Name:      "rent",
		Start:     0,
		End:       10,
		Amount:    money.NewMoney(-1),
		Frequency: Frequency{Kind: Monthly, EveryN: 1},
	}

	tests := []struct {
		name    string
		mutate  func(r *Recurring)
		wantErr bool
	}{
		{"fixed amount", func(r *Recurring) {}, false},
		{"compounding principal", func(r *Recurring) {
			r.Amount = money.Zero()
			r.Principal = money.NewMoney(1)
			r.Interest = decimal.NewFromInt(1)
		}, false},
		{"both amount and principal", func(r *Recurring) { r.Principal = money.NewMoney(1) }, true},
		{"amount with interest", func(r *Recurring) { r.Interest = decimal.NewFromInt(1) }, true},
		{"neither set", func(r *Recurring) { r.Amount = money.Zero() }, true},
		{"negative times", func(r *Recurring) { r.Start, r.End = -1, -1 }, true},
		{"end before start", func(r *Recurring) { r.Start, r.End = 10, 5 }, true},
		{"negative interest", func(r *Recurring) {
			r.Amount = money.Zero()
			r.Principal = money.NewMoney(1)
			r.Interest = decimal.NewFromInt(-1)
		}, true},
		{"unknown frequency", func(r *Recurring) { r.Frequency.Kind = "hourly" }, true},
		{"negative every_n", func(r *Recurring) { r.Frequency.EveryN = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFrequencyEvery(t *testing.T) {
	assert.Equal(t, 1, Frequency{EveryN: 0}.Every())
	assert.Equal(t, 1, Frequency{EveryN: -3}.Every())
	assert.Equal(t, 1, Frequency{EveryN: 1}.Every())
	assert.Equal(t, 3, Frequency{EveryN: 3}.Every())
}

func TestFrequencyKindFromYAML(t *testing.T) {
	var f Frequency
	require.NoError(t, yaml.Unmarshal([]byte("kind: Weekly\nevery_n: 2\n"), &f))
	assert.Equal(t, Weekly, f.Kind)
	assert.Equal(t, 2, f.EveryN)

	err := yaml.Unmarshal([]byte("kind: fortnightly\n"), &f)
	assert.Error(t, err)
}

func TestRecurringFromYAML(t *testing.T) {
	doc := `
name: savings
start: 1700000000
end: 1800000000
principal: 1000.50
amount: 0
interest: 0.4
frequency:
  kind: monthly
  every_n: 1
`
	var r Recurring
	require.NoError(t, yaml.Unmarshal([]byte(doc), &r))
	assert.True(t, r.Principal.Equal(money.NewMoney(1000.50)))
	assert.True(t, r.Interest.Equal(decimal.RequireFromString("0.4")))
	assert.True(t, r.IsCompounding())
	assert.NoError(t, r.Validate())
}
