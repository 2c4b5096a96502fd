package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// ListTags fetches and renders all tags.
func (a *App) ListTags(ctx context.Context) error {
	if err := a.tags.Fetch(ctx); err != nil {
		banner(a.out, a.tags.Err())
		return err
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, tg := range a.tags.Tags() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tg.ID, tg.TagName, truncate(tg.Description, 60))
	}
	tw.Flush()
	return nil
}

func (a *App) promptTagPayload() (models.TagPayload, error) {
	p := models.TagPayload{}
	var err error
	if p.TagName, err = getSimpleText(a.reader, "Tag name", a.out); err != nil {
		return p, err
	}
	if p.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return p, err
	}
	return p, nil
}

// AddTag creates a tag.
func (a *App) AddTag(ctx context.Context) error {
	p, err := a.promptTagPayload()
	if err != nil {
		return err
	}
	if err := a.tags.Create(ctx, p); err != nil {
		banner(a.out, a.tags.Err())
		return err
	}
	fmt.Fprintln(a.out, "Tag created.")
	return nil
}

// EditTag updates a tag in place.
func (a *App) EditTag(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Tag id", a.out)
	if err != nil {
		return err
	}
	p, err := a.promptTagPayload()
	if err != nil {
		return err
	}
	if err := a.tags.Update(ctx, id, p); err != nil {
		banner(a.out, a.tags.Err())
		return err
	}
	fmt.Fprintln(a.out, "Tag updated.")
	return nil
}

// DeleteTag removes a tag by id. Items referencing the tag keep the label;
// the backend does not cascade.
func (a *App) DeleteTag(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Tag id", a.out)
	if err != nil {
		return err
	}
	if err := a.tags.Delete(ctx, id); err != nil {
		banner(a.out, a.tags.Err())
		return err
	}
	fmt.Fprintln(a.out, "Tag deleted.")
	return nil
}
