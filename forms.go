package storefront

import (
	"context"

	"github.com/craftmarket/storefront-go/pkg/apiclient"
)

// LeadFormResult acknowledges a submitted inquiry.
type LeadFormResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SubmitLeadForm sends a lead-capture inquiry with optional file
// attachments. The request is multipart: attachments are raw binary
// parts and must never travel through the JSON encoding.
func (c *Client) SubmitLeadForm(ctx context.Context, form LeadForm, attachments ...apiclient.FilePart) (*LeadFormResult, error) {
	if err := validateStruct(form); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"kind":    form.Kind,
		"name":    form.Name,
		"email":   form.Email,
		"phone":   form.Phone,
		"company": form.Company,
		"message": form.Message,
	}

	var result LeadFormResult
	if err := c.api.DoMultipart(ctx, "/forms/leads", fields, attachments, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
