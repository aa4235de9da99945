package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"hostel-portal/app/models"
)

// UploadField is the multipart field name the backend reads the CSV from.
const UploadField = "file"

func (c *Client) upload(ctx context.Context, path, filename string, r io.Reader) (models.Message, error) {
	var msg models.Message
	if r == nil {
		return msg, Validation("Please choose a CSV file to upload.")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(UploadField, filepath.Base(filename))
	if err != nil {
		return msg, &Error{Kind: KindValidation, Op: http.MethodPost + " " + path, Message: "Could not read the file.", Err: err}
	}
	if _, err := io.Copy(part, r); err != nil {
		return msg, &Error{Kind: KindValidation, Op: http.MethodPost + " " + path, Message: "Could not read the file.", Err: err}
	}
	if err := mw.Close(); err != nil {
		return msg, &Error{Kind: KindValidation, Op: http.MethodPost + " " + path, Message: "Could not read the file.", Err: err}
	}

	_, err = c.call(ctx, request{
		method:      http.MethodPost,
		path:        path,
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, &msg)
	return msg, err
}
