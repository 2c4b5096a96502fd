package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// ListFavorites fetches and renders all customer favorites.
func (a *App) ListFavorites(ctx context.Context) error {
	if err := a.favorites.Fetch(ctx); err != nil {
		banner(a.out, a.favorites.Err())
		return err
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CUSTOMER\tEMAIL\tITEM\tADDED")
	for _, f := range a.favorites.Favorites() {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n",
			f.User.FirstName, f.User.LastName, f.User.Email, f.Item.WebsiteName, f.AddedAt)
	}
	tw.Flush()
	fmt.Fprintf(a.out, "%d favorites total\n", a.favorites.Count())
	return nil
}
