package artpdf

import (
	"context"
	"fmt"
	"io"
	"net/http"
	nurl "net/url"
	"strings"
)

// maxPageSize limits how much of the response body is read.
const maxPageSize = 20 << 20

// page is the downloaded article page. It only lives until it's parsed.
type page struct {
	Body []byte
	URL  *nurl.URL // final URL, after redirects
}

// parseTargetURL validates the URL entered by user. URL without scheme is
// assumed to be HTTPS, since that's what people usually copy from the
// address bar of mobile browser.
func parseTargetURL(rawURL string) (*nurl.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	url, err := nurl.ParseRequestURI(rawURL)
	if err != nil || url.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	if url.Scheme != "http" && url.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, url.Scheme)
	}

	return url, nil
}

// fetchPage downloads the page using a single GET request. There are no
// retries: any network error or non-2xx status ends the conversion.
func fetchPage(ctx context.Context, client *http.Client, url *nurl.URL, userAgent string) (*page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{URL: url.String(), StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetch, err)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}

	return &page{Body: body, URL: finalURL}, nil
}
