package storefront

import "time"

// Product is a catalog item as served by the remote API. Only the
// fields the client renders are typed here; anything the API adds
// later passes through the decoder untouched.
type Product struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	CategoryID  string    `json:"category_id"`
	SupplierID  string    `json:"supplier_id"`
	ImageURLs   []string  `json:"image_urls"`
	CreatedAt   time.Time `json:"created_at"`
}

// Category is a catalog grouping.
type Category struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

// Supplier is a seller profile.
type Supplier struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Country     string `json:"country"`
	Verified    bool   `json:"verified"`
}

// Page wraps a paginated list response.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	PageNumber int `json:"page"`
	PerPage    int `json:"per_page"`
}

// ProductQuery filters the product listing.
type ProductQuery struct {
	Search     string
	CategoryID string
	SupplierID string
	Page       int
	PerPage    int
}

// SupplierQuery filters the supplier listing.
type SupplierQuery struct {
	Search  string
	Country string
	Page    int
	PerPage int
}

// LeadForm is a lead-capture submission (B2B/B2C/franchise inquiry).
// Attachments ride alongside as multipart file parts.
type LeadForm struct {
	Kind    string `json:"kind" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=5"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required,min=10"`
}

// Plan is a subscription offering.
type Plan struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency"`
	Interval   string `json:"interval"`
}

// CheckoutRef is the opaque handle the payment widget consumes.
// The widget itself is an external component; the SDK only relays
// the reference.
type CheckoutRef struct {
	SubscriptionID string `json:"subscription_id"`
	CheckoutURL    string `json:"checkout_url"`
}
