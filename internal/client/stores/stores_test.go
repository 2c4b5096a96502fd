package stores

import (
	"context"

	"github.com/aidirectory/adminctl/internal/client/models"
)

// fakeAPI implements api.Client with overridable behavior per method.
// Methods without an override succeed with zero values.
type fakeAPI struct {
	listItems  func(ctx context.Context, page, limit int) (*models.ItemPage, error)
	addItem    func(ctx context.Context, p models.ItemPayload) (*models.Item, error)
	updateItem func(ctx context.Context, id string, p models.ItemPayload) (*models.Item, error)
	deleteItem func(ctx context.Context, id string) error

	listCategories func(ctx context.Context) ([]models.Category, error)
	addCategory    func(ctx context.Context, p models.CategoryPayload) (*models.Category, error)
	updateCategory func(ctx context.Context, id string, p models.CategoryPayload) (*models.Category, error)
	deleteCategory func(ctx context.Context, id string) error

	listTags  func(ctx context.Context) ([]models.Tag, error)
	addTag    func(ctx context.Context, p models.TagPayload) (*models.Tag, error)
	updateTag func(ctx context.Context, id string, p models.TagPayload) (*models.Tag, error)
	deleteTag func(ctx context.Context, id string) error

	listCustomers   func(ctx context.Context) ([]models.Customer, error)
	blockCustomer   func(ctx context.Context, id string) error
	unblockCustomer func(ctx context.Context, id string) error
	updateCustomer  func(ctx context.Context, id string, u models.CustomerUpdate) (*models.Customer, error)
	deleteCustomer  func(ctx context.Context, id string) error

	listFavorites func(ctx context.Context) ([]models.Favorite, int, error)
	summary       func(ctx context.Context) (*models.DashboardStats, error)
}

func (f *fakeAPI) Login(ctx context.Context, p models.LoginPayload) (*models.LoginResponse, error) {
	return &models.LoginResponse{}, nil
}

func (f *fakeAPI) Register(ctx context.Context, p models.RegisterPayload) (*models.RegisterResponse, error) {
	return &models.RegisterResponse{}, nil
}

func (f *fakeAPI) Logout(ctx context.Context) (string, error) { return "", nil }

func (f *fakeAPI) ListItems(ctx context.Context, page, limit int) (*models.ItemPage, error) {
	if f.listItems != nil {
		return f.listItems(ctx, page, limit)
	}
	return &models.ItemPage{Page: page}, nil
}

func (f *fakeAPI) AddItem(ctx context.Context, p models.ItemPayload) (*models.Item, error) {
	if f.addItem != nil {
		return f.addItem(ctx, p)
	}
	return &models.Item{}, nil
}

func (f *fakeAPI) UpdateItem(ctx context.Context, id string, p models.ItemPayload) (*models.Item, error) {
	if f.updateItem != nil {
		return f.updateItem(ctx, id, p)
	}
	return &models.Item{}, nil
}

func (f *fakeAPI) DeleteItem(ctx context.Context, id string) error {
	if f.deleteItem != nil {
		return f.deleteItem(ctx, id)
	}
	return nil
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.listCategories != nil {
		return f.listCategories(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) AddCategory(ctx context.Context, p models.CategoryPayload) (*models.Category, error) {
	if f.addCategory != nil {
		return f.addCategory(ctx, p)
	}
	return &models.Category{}, nil
}

func (f *fakeAPI) UpdateCategory(ctx context.Context, id string, p models.CategoryPayload) (*models.Category, error) {
	if f.updateCategory != nil {
		return f.updateCategory(ctx, id, p)
	}
	return &models.Category{}, nil
}

func (f *fakeAPI) DeleteCategory(ctx context.Context, id string) error {
	if f.deleteCategory != nil {
		return f.deleteCategory(ctx, id)
	}
	return nil
}

func (f *fakeAPI) ListTags(ctx context.Context) ([]models.Tag, error) {
	if f.listTags != nil {
		return f.listTags(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) AddTag(ctx context.Context, p models.TagPayload) (*models.Tag, error) {
	if f.addTag != nil {
		return f.addTag(ctx, p)
	}
	return &models.Tag{}, nil
}

func (f *fakeAPI) UpdateTag(ctx context.Context, id string, p models.TagPayload) (*models.Tag, error) {
	if f.updateTag != nil {
		return f.updateTag(ctx, id, p)
	}
	return &models.Tag{}, nil
}

func (f *fakeAPI) DeleteTag(ctx context.Context, id string) error {
	if f.deleteTag != nil {
		return f.deleteTag(ctx, id)
	}
	return nil
}

func (f *fakeAPI) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	if f.listCustomers != nil {
		return f.listCustomers(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) BlockCustomer(ctx context.Context, id string) error {
	if f.blockCustomer != nil {
		return f.blockCustomer(ctx, id)
	}
	return nil
}

func (f *fakeAPI) UnblockCustomer(ctx context.Context, id string) error {
	if f.unblockCustomer != nil {
		return f.unblockCustomer(ctx, id)
	}
	return nil
}

func (f *fakeAPI) UpdateCustomer(ctx context.Context, id string, u models.CustomerUpdate) (*models.Customer, error) {
	if f.updateCustomer != nil {
		return f.updateCustomer(ctx, id, u)
	}
	return &models.Customer{}, nil
}

func (f *fakeAPI) DeleteCustomer(ctx context.Context, id string) error {
	if f.deleteCustomer != nil {
		return f.deleteCustomer(ctx, id)
	}
	return nil
}

func (f *fakeAPI) ListFavorites(ctx context.Context) ([]models.Favorite, int, error) {
	if f.listFavorites != nil {
		return f.listFavorites(ctx)
	}
	return nil, 0, nil
}

func (f *fakeAPI) Summary(ctx context.Context) (*models.DashboardStats, error) {
	if f.summary != nil {
		return f.summary(ctx)
	}
	return &models.DashboardStats{}, nil
}
