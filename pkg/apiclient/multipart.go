package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// FilePart is one binary attachment of a multipart request.
type FilePart struct {
	Field    string    // form field name
	Filename string    // original file name
	Content  io.Reader // raw bytes, streamed as-is
}

// DoMultipart performs a multipart/form-data POST with text fields and
// binary file parts. Bearer attachment and 401 handling are identical
// to Do; only the encoding differs, so binary uploads are never forced
// through the JSON content type.
func (c *Client) DoMultipart(ctx context.Context, path string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("apiclient: write form field %q: %w", name, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("apiclient: create form file %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return fmt.Errorf("apiclient: copy form file %q: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("apiclient: finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	return c.send(req, out)
}
