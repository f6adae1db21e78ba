package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"frontend-go/config"
)

var (
	apiBaseURL string
	httpClient *http.Client
)

// ErrUnauthorized is returned for any 401 from the API. The middleware
// layer reacts by clearing the session and redirecting to login; the
// wrapper itself only reports it.
var ErrUnauthorized = errors.New("sesi sudah berakhir, silakan login kembali")

// APIError carries a non-2xx answer with the server's message body
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// InitAPIClient wires the wrapper to the remote API. Timeouts live on the
// transport; there is no retry policy, an error surfaces once.
func InitAPIClient(baseURL string, timeout time.Duration) {
	apiBaseURL = baseURL
	httpClient = &http.Client{Timeout: timeout}
	config.Log.WithField("base_url", baseURL).Info("API client diinisialisasi")
}

// FileUpload is a browser upload forwarded verbatim to the API
type FileUpload struct {
	Field string
	File  *multipart.FileHeader
}

func doRequest(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType, token string, out interface{}) error {
	reqURL := apiBaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		config.Log.WithError(err).WithField("path", path).Error("Request ke API gagal")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		// Surface the server's {message} body, generic fallback otherwise
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Something went wrong"}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}
	return nil
}

func apiGet(ctx context.Context, path string, params url.Values, token string, out interface{}) error {
	return doRequest(ctx, http.MethodGet, path, params, nil, "", token, out)
}

func apiPostJSON(ctx context.Context, path string, body interface{}, token string, out interface{}) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return doRequest(ctx, http.MethodPost, path, nil, bytes.NewReader(buf), "application/json", token, out)
}

func apiDelete(ctx context.Context, path string, token string) error {
	return doRequest(ctx, http.MethodDelete, path, nil, nil, "", token, nil)
}

// apiSendMultipart submits form fields plus an optional file upload with
// the given method (POST for create, PUT for update)
func apiSendMultipart(ctx context.Context, method, path string, fields map[string]string, upload *FileUpload, token string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}

	if upload != nil && upload.File != nil {
		src, err := upload.File.Open()
		if err != nil {
			return err
		}
		defer src.Close()

		part, err := writer.CreateFormFile(upload.Field, upload.File.Filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, src); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	return doRequest(ctx, method, path, nil, &buf, writer.FormDataContentType(), token, out)
}
