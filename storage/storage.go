package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
)

const postUrl = "https://api.na.cx/upload"

// Upload pushes an image to the external host and returns its public
// URL. Object names are random so concurrent uploads never collide.
func Upload(ctx context.Context, reader io.Reader) (string, error) {
	b := &bytes.Buffer{}
	mw := multipart.NewWriter(b)
	fw, err := mw.CreateFormFile("image", uuid.NewString())
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(fw, reader); err != nil {
		return "", err
	}
	mw.Close()

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, postUrl, b)
	if err != nil {
		return "", err
	}
	r.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	var body struct {
		Status int    `json:"status"`
		Url    string `json:"url"`
	}
	err = json.NewDecoder(resp.Body).Decode(&body)
	return body.Url, err
}
