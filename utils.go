package artpdf

import (
	"fmt"
	nurl "net/url"
	"os"
	"regexp"
	"strings"
)

var (
	rxIllegalNameChars = regexp.MustCompile(`[\\/*?:"<>|]`)
)

// SanitizeTitle makes title usable as a file name: characters that are
// illegal in file names are removed, then the title is truncated to
// maxLength characters. Non-positive maxLength disables truncation.
func SanitizeTitle(title string, maxLength int) string {
	title = strings.TrimSpace(title)
	title = rxIllegalNameChars.ReplaceAllString(title, "")

	if maxLength > 0 {
		if runes := []rune(title); len(runes) > maxLength {
			title = string(runes[:maxLength])
		}
	}

	return title
}

// createAbsoluteURL resolves url against base. Data URL, fragment and URL
// that already absolute are returned as it is.
func createAbsoluteURL(url string, base *nurl.URL) string {
	url = strings.TrimSpace(url)
	if url == "" || base == nil {
		return url
	}

	if strings.HasPrefix(url, "data:") || strings.HasPrefix(url, "#") {
		return url
	}

	tmp, err := nurl.Parse(url)
	if err != nil {
		return url
	}

	if tmp.Scheme != "" && tmp.Host != "" {
		return url
	}

	return base.ResolveReference(tmp).String()
}

// writeTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func writeTempFile(content, extension string) (path string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "artpdf-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	return path, cleanup, nil
}

// fileSize returns size of the regular file at path, or -1 if there is none.
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return -1
	}

	return info.Size()
}
