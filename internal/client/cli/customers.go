package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// ListCustomers fetches and renders all end-user accounts. Blocked wins over
// inactive in the status column.
func (a *App) ListCustomers(ctx context.Context) error {
	if err := a.customers.Fetch(ctx); err != nil {
		banner(a.out, a.customers.Err())
		return err
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSTATUS")
	for _, c := range a.customers.Customers() {
		status := "active"
		switch {
		case c.IsBlocked:
			status = "blocked"
		case !c.IsActive:
			status = "inactive"
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", c.ID, c.FirstName, c.LastName, c.Email, status)
	}
	tw.Flush()
	return nil
}

// BlockCustomer blocks an account by id.
func (a *App) BlockCustomer(ctx context.Context) error {
	return a.setBlocked(ctx, true)
}

// UnblockCustomer lifts a block by id.
func (a *App) UnblockCustomer(ctx context.Context) error {
	return a.setBlocked(ctx, false)
}

func (a *App) setBlocked(ctx context.Context, blocked bool) error {
	id, err := getSimpleText(a.reader, "Customer id", a.out)
	if err != nil {
		return err
	}

	if blocked {
		err = a.customers.Block(ctx, id)
	} else {
		err = a.customers.Unblock(ctx, id)
	}
	if err != nil {
		banner(a.out, a.customers.Err())
		return err
	}

	fmt.Fprintf(a.out, "Customer %s.\n", onOff(blocked, "blocked", "unblocked"))
	return nil
}

// EditCustomer prompts for the editable profile fields. Empty answers leave
// the corresponding field unchanged server-side.
func (a *App) EditCustomer(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Customer id", a.out)
	if err != nil {
		return err
	}

	u := models.CustomerUpdate{}
	if u.FirstName, err = getSimpleText(a.reader, "First name (empty to keep)", a.out); err != nil {
		return err
	}
	if u.LastName, err = getSimpleText(a.reader, "Last name (empty to keep)", a.out); err != nil {
		return err
	}
	if u.Email, err = getSimpleText(a.reader, "Email (empty to keep)", a.out); err != nil {
		return err
	}
	if u.Mobile, err = getSimpleText(a.reader, "Mobile (empty to keep)", a.out); err != nil {
		return err
	}
	if u.DOB, err = getSimpleText(a.reader, "Date of birth (empty to keep)", a.out); err != nil {
		return err
	}

	if err := a.customers.Update(ctx, id, u); err != nil {
		banner(a.out, a.customers.Err())
		return err
	}
	fmt.Fprintln(a.out, "Customer updated.")
	return nil
}

// DeleteCustomer removes an account by id.
func (a *App) DeleteCustomer(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Customer id", a.out)
	if err != nil {
		return err
	}
	if err := a.customers.Delete(ctx, id); err != nil {
		banner(a.out, a.customers.Err())
		return err
	}
	fmt.Fprintln(a.out, "Customer deleted.")
	return nil
}
