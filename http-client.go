package artpdf

import (
	"crypto/tls"
	"net/http"
	"net/http/cookiejar"
)

// newHTTPClient creates the client used to download the article page.
func newHTTPClient(cfg Config) *http.Client {
	jar, _ := cookiejar.New(nil)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.SkipTLSVerification {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 -- opt-in through --insecure
		}
	}

	return &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: transport,
		Jar:       jar,
	}
}
