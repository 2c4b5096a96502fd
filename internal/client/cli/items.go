package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// ListItems fetches and renders one page of listings. An optional numeric
// argument selects the page; without it the current page is re-fetched
// (page 1 on first use).
func (a *App) ListItems(ctx context.Context, args []string) error {
	page := a.items.Page()
	if page == 0 {
		page = 1
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Usage: items [page]")
			return nil
		}
		page = n
	}

	if err := a.items.Fetch(ctx, page); err != nil {
		banner(a.out, a.items.Err())
		return err
	}

	a.renderItems()
	return nil
}

func (a *App) renderItems() {
	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICING\tRATING\tURL")
	for _, it := range a.items.Items() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%s\n",
			it.ID, truncate(it.WebsiteName, 30), it.Category, it.PricingType, it.Rating, truncate(it.WebsiteURL, 40))
	}
	tw.Flush()
	fmt.Fprintf(a.out, "Page %d of %d (%d items total)\n", a.items.Page(), a.items.TotalPages(), a.items.Total())
}

func (a *App) promptItemPayload() (models.ItemPayload, error) {
	p := models.ItemPayload{}
	var err error
	if p.WebsiteName, err = getSimpleText(a.reader, "Website name", a.out); err != nil {
		return p, err
	}
	if p.WebsiteURL, err = getSimpleText(a.reader, "Website URL", a.out); err != nil {
		return p, err
	}
	if p.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return p, err
	}
	if p.Category, err = getSimpleText(a.reader, "Category", a.out); err != nil {
		return p, err
	}
	if p.Image, err = getSimpleText(a.reader, "Image URL", a.out); err != nil {
		return p, err
	}
	if p.PricingType, err = getSimpleText(a.reader, "Pricing type (free/paid/freemium)", a.out); err != nil {
		return p, err
	}
	if p.PricingDetails, err = getSimpleText(a.reader, "Pricing details", a.out); err != nil {
		return p, err
	}
	if p.Tags, err = getSimpleText(a.reader, "Tags (comma separated)", a.out); err != nil {
		return p, err
	}
	if p.Features, err = getSimpleText(a.reader, "Features (comma separated)", a.out); err != nil {
		return p, err
	}
	if p.Country, err = getSimpleText(a.reader, "Country", a.out); err != nil {
		return p, err
	}
	if p.Rating, err = getFloat(a.reader, "Rating (0-5)", a.out); err != nil {
		return p, err
	}
	if p.AI, err = getBool(a.reader, "AI powered?", a.out); err != nil {
		return p, err
	}
	if p.MobileApp, err = getBool(a.reader, "Has a mobile app?", a.out); err != nil {
		return p, err
	}
	return p, nil
}

// AddItem prompts for all listing fields and creates the item. The store
// re-fetches the current page afterwards, so the new item shows up in the
// next listing.
func (a *App) AddItem(ctx context.Context) error {
	p, err := a.promptItemPayload()
	if err != nil {
		return err
	}
	if err := a.items.Create(ctx, p); err != nil {
		banner(a.out, a.items.Err())
		return err
	}
	fmt.Fprintln(a.out, "Item created.")
	return nil
}

// EditItem prompts for an id and the full replacement payload.
func (a *App) EditItem(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Item id", a.out)
	if err != nil {
		return err
	}
	p, err := a.promptItemPayload()
	if err != nil {
		return err
	}
	if err := a.items.Update(ctx, id, p); err != nil {
		banner(a.out, a.items.Err())
		return err
	}
	fmt.Fprintln(a.out, "Item updated.")
	return nil
}

// DeleteItem removes a listing by id.
func (a *App) DeleteItem(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Item id", a.out)
	if err != nil {
		return err
	}
	if err := a.items.Delete(ctx, id); err != nil {
		banner(a.out, a.items.Err())
		return err
	}
	fmt.Fprintln(a.out, "Item deleted.")
	return nil
}
