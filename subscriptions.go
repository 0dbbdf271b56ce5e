package storefront

import (
	"context"
	"fmt"
	"net/http"
)

// Plans lists the available subscription offerings.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := c.api.Do(ctx, http.MethodGet, "/subscriptions/plans", nil, &plans)
	return plans, err
}

// Subscribe starts a subscription checkout for the given plan and
// returns the opaque reference the external payment widget consumes.
// Payment verification happens entirely on the API side; a later 401
// on any request is the only signal this client reacts to.
func (c *Client) Subscribe(ctx context.Context, planID string) (*CheckoutRef, error) {
	if planID == "" {
		return nil, fmt.Errorf("storefront: plan id is required")
	}

	body := map[string]string{"plan_id": planID}
	var ref CheckoutRef
	if err := c.api.Do(ctx, http.MethodPost, "/subscriptions", body, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}
