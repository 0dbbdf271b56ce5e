package storefront

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Products lists catalog items matching the query.
func (c *Client) Products(ctx context.Context, q ProductQuery) (Page[Product], error) {
	params := url.Values{}
	setParam(params, "q", q.Search)
	setParam(params, "category_id", q.CategoryID)
	setParam(params, "supplier_id", q.SupplierID)
	setPageParams(params, q.Page, q.PerPage)

	var page Page[Product]
	err := c.api.Do(ctx, http.MethodGet, withQuery("/products", params), nil, &page)
	return page, err
}

// Product fetches a single catalog item by slug.
func (c *Client) Product(ctx context.Context, slug string) (*Product, error) {
	var p Product
	if err := c.api.Do(ctx, http.MethodGet, "/products/"+url.PathEscape(slug), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Categories lists the full category tree.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var cats []Category
	err := c.api.Do(ctx, http.MethodGet, "/categories", nil, &cats)
	return cats, err
}

// Suppliers lists seller profiles matching the query.
func (c *Client) Suppliers(ctx context.Context, q SupplierQuery) (Page[Supplier], error) {
	params := url.Values{}
	setParam(params, "q", q.Search)
	setParam(params, "country", q.Country)
	setPageParams(params, q.Page, q.PerPage)

	var page Page[Supplier]
	err := c.api.Do(ctx, http.MethodGet, withQuery("/suppliers", params), nil, &page)
	return page, err
}

// Supplier fetches a single seller profile.
func (c *Client) Supplier(ctx context.Context, id string) (*Supplier, error) {
	var s Supplier
	if err := c.api.Do(ctx, http.MethodGet, "/suppliers/"+url.PathEscape(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func setParam(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setPageParams(params url.Values, page, perPage int) {
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		params.Set("per_page", strconv.Itoa(perPage))
	}
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
