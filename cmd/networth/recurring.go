package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finch/networth/internal/domain"
	"github.com/finch/networth/pkg/dateutil"
	money "github.com/finch/networth/pkg/decimal"
)

func newRecurringCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recurring",
		Aliases: []string{"recurrings"},
		Short:   "Manage ad hoc recurring cash flows outside the plan",
	}
	cmd.AddCommand(
		newRecurringListCmd(a),
		newRecurringShowCmd(a),
		newRecurringAddCmd(a),
		newRecurringUpdateCmd(a),
		newRecurringRemoveCmd(a),
	)
	return cmd
}

func newRecurringListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ad hoc recurrings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recurrings, err := a.svc.ListRecurrings(cmd.Context())
			if err != nil {
				return hint(err)
			}
			if len(recurrings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recurrings")
				return nil
			}
			for _, r := range recurrings {
				printRecurring(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func newRecurringShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one ad hoc recurring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.GetRecurring(cmd.Context(), args[0])
			if err != nil {
				return hint(err)
			}
			printRecurring(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

// recurringFlags holds the flag values that describe a recurring on the command line.
type recurringFlags struct {
	name      string
	start     string
	end       string
	amount    string
	principal string
	interest  string
	frequency string
	every     int
}

func (f *recurringFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "name")
	fl.StringVar(&f.start, "start", "", "first day, YYYY-MM-DD or epoch seconds")
	fl.StringVar(&f.end, "end", "", "end day (exclusive), YYYY-MM-DD or epoch seconds")
	fl.StringVar(&f.amount, "amount", "0", "fixed amount per payment (negative for spending)")
	fl.StringVar(&f.principal, "principal", "0", "principal of a compounding stream")
	fl.StringVar(&f.interest, "interest", "0", "interest percent per payment for a compounding stream")
	fl.StringVar(&f.frequency, "frequency", "monthly", "daily, weekly, monthly or annually")
	fl.IntVar(&f.every, "every", 1, "pay on every n-th aligned occurrence")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func (f *recurringFlags) recurring() (domain.Recurring, error) {
	r := domain.Recurring{
		Name:      f.name,
		Frequency: domain.Frequency{EveryN: f.every},
	}
	var err error
	if r.Start, err = dateutil.ParseDate(f.start); err != nil {
		return r, fmt.Errorf("--start: %w", err)
	}
	if r.End, err = dateutil.ParseDate(f.end); err != nil {
		return r, fmt.Errorf("--end: %w", err)
	}
	if r.Amount, err = money.NewMoneyFromString(f.amount); err != nil {
		return r, fmt.Errorf("--amount: %w", err)
	}
	if r.Principal, err = money.NewMoneyFromString(f.principal); err != nil {
		return r, fmt.Errorf("--principal: %w", err)
	}
	if r.Interest, err = decimal.NewFromString(f.interest); err != nil {
		return r, fmt.Errorf("--interest: %w", err)
	}
	if err := r.Frequency.Kind.UnmarshalText([]byte(f.frequency)); err != nil {
		return r, fmt.Errorf("--frequency: %w", err)
	}
	return r, nil
}

func newRecurringAddCmd(a *app) *cobra.Command {
	var f recurringFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an ad hoc recurring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := f.recurring()
			if err != nil {
				return err
			}
			created, err := a.svc.NewRecurring(cmd.Context(), r)
			if err != nil {
				return hint(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added recurring %s\n", created.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRecurringUpdateCmd(a *app) *cobra.Command {
	var f recurringFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace an ad hoc recurring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := f.recurring()
			if err != nil {
				return err
			}
			updated, err := a.svc.UpdateRecurring(cmd.Context(), args[0], r)
			if err != nil {
				return hint(err)
			}
			printRecurring(cmd.OutOrStdout(), updated)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRecurringRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove an ad hoc recurring",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.svc.DeleteRecurring(cmd.Context(), args[0])
			if err != nil {
				return hint(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed recurring %q\n", removed.Name)
			return nil
		},
	}
}

func printRecurring(w io.Writer, r domain.Recurring) {
	value := r.Amount.Format()
	if r.IsCompounding() {
		value = fmt.Sprintf("%s @ %s%%", r.Principal.Format(), r.Interest.String())
	}
	fmt.Fprintf(w, "  %-36s %-20s %12s  %s every %d, %s to %s\n",
		r.ID, r.Name, value, r.Frequency.Kind, r.Frequency.Every(),
		dateutil.FormatDate(r.Start), dateutil.FormatDate(r.End))
}
