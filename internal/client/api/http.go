package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aidirectory/adminctl/internal/client/models"
	"github.com/aidirectory/adminctl/internal/logging"
)

// maxBodySize caps how much of a response body is read. The admin API returns
// small JSON documents; anything larger is a misbehaving server.
const maxBodySize = 4 << 20

// HTTPClient implements Client over JSON/HTTP with bearer authentication.
//
// A 401 on an authenticated call is handled once, centrally, here: the
// credentials are invalidated and onUnauthorized fires, then the original
// call still fails so the caller's error path runs. All other failures are
// propagated unchanged. There is no retry: one call, one request.
type HTTPClient struct {
	base           string
	http           *http.Client
	creds          Credentials
	onUnauthorized func()
	log            logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, creds Credentials, onUnauthorized func(), log logging.Logger) *HTTPClient {
	return &HTTPClient{
		base:           strings.TrimRight(baseURL, "/"),
		http:           &http.Client{Timeout: timeout},
		creds:          creds,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// do issues one request and decodes a 2xx response into out (when out is
// non-nil and the body is non-empty). authed selects bearer attachment and
// 401 interception; login/register pass false.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &Error{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode response body: %w", err)
			}
		}
		return nil
	}

	reqErr := responseError(resp.StatusCode, data)

	if resp.StatusCode == http.StatusUnauthorized && authed {
		c.log.Warn(ctx, "authorization failure, invalidating session", "method", method, "path", path)
		if c.creds != nil {
			c.creds.Invalidate(ctx)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	return reqErr
}

// responseError classifies a non-2xx body as the structured {"message"} shape
// or raw text.
func responseError(status int, data []byte) *Error {
	var payload struct {
		Message string `json:"message"`
	}
	if len(data) > 0 && json.Unmarshal(data, &payload) == nil && payload.Message != "" {
		return &Error{Status: status, Message: payload.Message}
	}
	return &Error{Status: status, Body: strings.TrimSpace(string(data))}
}

// --- auth ---

func (c *HTTPClient) Login(ctx context.Context, p models.LoginPayload) (*models.LoginResponse, error) {
	var res models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/admin/admin-login", nil, p, &res, false); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, p models.RegisterPayload) (*models.RegisterResponse, error) {
	var res models.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/admin/admin-register", nil, p, &res, false); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Logout(ctx context.Context) (string, error) {
	var res struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/admin-logout", nil, nil, &res, true); err != nil {
		return "", err
	}
	return res.Message, nil
}

// --- items ---

func (c *HTTPClient) ListItems(ctx context.Context, page, limit int) (*models.ItemPage, error) {
	query := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
	var res models.ItemPage
	if err := c.do(ctx, http.MethodGet, "/admin/items", query, nil, &res, true); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) AddItem(ctx context.Context, p models.ItemPayload) (*models.Item, error) {
	var res struct {
		Item models.Item `json:"item"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/add-item", nil, p, &res, true); err != nil {
		return nil, err
	}
	return &res.Item, nil
}

func (c *HTTPClient) UpdateItem(ctx context.Context, id string, p models.ItemPayload) (*models.Item, error) {
	var res struct {
		Item models.Item `json:"item"`
	}
	if err := c.do(ctx, http.MethodPut, "/admin/update-item/"+url.PathEscape(id), nil, p, &res, true); err != nil {
		return nil, err
	}
	return &res.Item, nil
}

func (c *HTTPClient) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/delete-item/"+url.PathEscape(id), nil, nil, nil, true)
}

// --- categories ---

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var res struct {
		CategoriesData []models.Category `json:"categoriesData"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/categories", nil, nil, &res, true); err != nil {
		return nil, err
	}
	return res.CategoriesData, nil
}

func (c *HTTPClient) AddCategory(ctx context.Context, p models.CategoryPayload) (*models.Category, error) {
	var res struct {
		Category models.Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/add-category", nil, p, &res, true); err != nil {
		return nil, err
	}
	return &res.Category, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id string, p models.CategoryPayload) (*models.Category, error) {
	var res struct {
		Category models.Category `json:"category"`
	}
	if err := c.do(ctx, http.MethodPut, "/admin/update-category/"+url.PathEscape(id), nil, p, &res, true); err != nil {
		return nil, err
	}
	return &res.Category, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/remove-category/"+url.PathEscape(id), nil, nil, nil, true)
}

// --- tags ---

func (c *HTTPClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	var res struct {
		Tags []models.Tag `json:"tags"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/tags", nil, nil, &res, true); err != nil {
		return nil, err
	}
	return res.Tags, nil
}

func (c *HTTPClient) AddTag(ctx context.Context, p models.TagPayload) (*models.Tag, error) {
	var res struct {
		Tag models.Tag `json:"tag"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/add-tag", nil, p, &res, true); err != nil {
		return nil, err
	}
	return &res.Tag, nil
}

func (c *HTTPClient) UpdateTag(ctx context.Context, id string, p models.TagPayload) (*models.Tag, error) {
	var res struct {
		Tag models.Tag `json:"tag"`
	}
	if err := c.do(ctx, http.MethodPut, "/admin/update-tag/"+url.PathEscape(id), nil, p, &res, true); err != nil {
		return nil, err
	}
	return &res.Tag, nil
}

func (c *HTTPClient) DeleteTag(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/remove-tag/"+url.PathEscape(id), nil, nil, nil, true)
}

// --- customers ---

func (c *HTTPClient) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var res struct {
		Customers []models.Customer `json:"customers"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/get-customers", nil, nil, &res, true); err != nil {
		return nil, err
	}
	return res.Customers, nil
}

func (c *HTTPClient) BlockCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/admin/block/"+url.PathEscape(id), nil, nil, nil, true)
}

func (c *HTTPClient) UnblockCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/admin/unblock/"+url.PathEscape(id), nil, nil, nil, true)
}

func (c *HTTPClient) UpdateCustomer(ctx context.Context, id string, u models.CustomerUpdate) (*models.Customer, error) {
	var res struct {
		Message string          `json:"message"`
		User    models.Customer `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/admin/update-user/"+url.PathEscape(id), nil, u, &res, true); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/delete-user/"+url.PathEscape(id), nil, nil, nil, true)
}

// --- favorites, dashboard ---

func (c *HTTPClient) ListFavorites(ctx context.Context) ([]models.Favorite, int, error) {
	var res struct {
		Data  []models.Favorite `json:"data"`
		Count int               `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/favorites", nil, nil, &res, true); err != nil {
		return nil, 0, err
	}
	return res.Data, res.Count, nil
}

func (c *HTTPClient) Summary(ctx context.Context) (*models.DashboardStats, error) {
	var res struct {
		Data models.DashboardStats `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/summary", nil, nil, &res, true); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

var _ Client = (*HTTPClient)(nil)
