package rustdoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrEmptyBody = errors.New("empty response body")

type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s returned HTTP %d", e.URL, e.Code)
}

// BodyWrapper lets the caller interpose on the body read, e.g. to drive a
// progress bar. The total is the Content-Length, -1 when unknown.
type BodyWrapper func(r io.Reader, total int64) io.ReadCloser

// Fetch performs the single GET against the docs page. There is no retry: a
// bad status or an empty body aborts the whole run, before any file on disk
// is touched.
func Fetch(ctx context.Context, client *http.Client, url string, wrap BodyWrapper) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}

	var r io.Reader = resp.Body
	if wrap != nil {
		wrapped := wrap(resp.Body, resp.ContentLength)
		defer func() {
			_ = wrapped.Close()
		}()
		r = wrapped
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%s: %w", url, ErrEmptyBody)
	}

	return string(data), nil
}
