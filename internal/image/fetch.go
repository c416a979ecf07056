package imagepkg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// DefaultClient is used when a caller passes a nil *http.Client.
var DefaultClient = &http.Client{Timeout: 30 * time.Second}

// FetchError reports a non-success HTTP response for an image URL.
type FetchError struct {
	URL    string
	Status int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
}

// IsURL reports whether a locator is a network locator rather than a local
// filesystem path.
func IsURL(locator string) bool {
	return strings.HasPrefix(locator, "http")
}

// Resolve loads an image from a URL or a local path. The result is always
// normalized to NRGBA so transparency is defined downstream regardless of the
// source format.
func Resolve(ctx context.Context, client *http.Client, locator string) (*image.NRGBA, error) {
	if IsURL(locator) {
		return Fetch(ctx, client, locator)
	}
	return Open(locator)
}

// Fetch downloads an image over HTTP and decodes it. A non-2xx response fails
// with a *FetchError; there are no retries.
func Fetch(ctx context.Context, client *http.Client, url string) (*image.NRGBA, error) {
	if client == nil {
		client = DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return imaging.Clone(img), nil
}

// Open decodes a local image file, normalized to NRGBA.
func Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}
