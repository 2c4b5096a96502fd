package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// ListCategories fetches and renders all categories.
func (a *App) ListCategories(ctx context.Context) error {
	if err := a.categories.Fetch(ctx); err != nil {
		banner(a.out, a.categories.Err())
		return err
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSLUG\tDESCRIPTION")
	for _, c := range a.categories.Categories() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.CategoryName, c.Slug, truncate(c.Description, 50))
	}
	tw.Flush()
	return nil
}

func (a *App) promptCategoryPayload() (models.CategoryPayload, error) {
	p := models.CategoryPayload{}
	var err error
	if p.CategoryName, err = getSimpleText(a.reader, "Category name", a.out); err != nil {
		return p, err
	}
	if p.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return p, err
	}
	if p.Image, err = getSimpleText(a.reader, "Image URL", a.out); err != nil {
		return p, err
	}
	return p, nil
}

// AddCategory creates a category. The slug comes back from the server.
func (a *App) AddCategory(ctx context.Context) error {
	p, err := a.promptCategoryPayload()
	if err != nil {
		return err
	}
	if err := a.categories.Create(ctx, p); err != nil {
		banner(a.out, a.categories.Err())
		return err
	}
	fmt.Fprintln(a.out, "Category created.")
	return nil
}

// EditCategory updates a category in place.
func (a *App) EditCategory(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Category id", a.out)
	if err != nil {
		return err
	}
	p, err := a.promptCategoryPayload()
	if err != nil {
		return err
	}
	if err := a.categories.Update(ctx, id, p); err != nil {
		banner(a.out, a.categories.Err())
		return err
	}
	fmt.Fprintln(a.out, "Category updated.")
	return nil
}

// DeleteCategory removes a category by id.
func (a *App) DeleteCategory(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Category id", a.out)
	if err != nil {
		return err
	}
	if err := a.categories.Delete(ctx, id); err != nil {
		banner(a.out, a.categories.Err())
		return err
	}
	fmt.Fprintln(a.out, "Category deleted.")
	return nil
}
