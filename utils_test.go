package artpdf

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		maxLength int
		expected  string
	}{
		{"plain title", "Example Post", 60, "Example Post"},
		{"trims spaces", "  Example Post \n", 60, "Example Post"},
		{"removes illegal chars", `a\b/c*d?e:f"g<h>i|j`, 60, "abcdefghij"},
		{"only illegal chars", `\/*?:"<>|`, 60, ""},
		{"truncates", strings.Repeat("x", 61), 60, strings.Repeat("x", 60)},
		{"exact length", strings.Repeat("x", 60), 60, strings.Repeat("x", 60)},
		{"removes before truncating", strings.Repeat("?", 10) + strings.Repeat("y", 60), 60, strings.Repeat("y", 60)},
		{"no limit", strings.Repeat("z", 100), 0, strings.Repeat("z", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeTitle(tt.title, tt.maxLength))
		})
	}

	t.Run("truncates by character", func(t *testing.T) {
		result := SanitizeTitle(strings.Repeat("微信文章", 20), 60)
		assert.True(t, utf8.ValidString(result))
		assert.Equal(t, 60, utf8.RuneCountInString(result))
	})
}

func TestCreateAbsoluteURL(t *testing.T) {
	base, _ := url.Parse("https://mp.weixin.qq.com/s/abc?x=1")

	assert.Equal(t, "https://mp.weixin.qq.com/img/a.png", createAbsoluteURL("/img/a.png", base))
	assert.Equal(t, "https://mp.weixin.qq.com/s/a.png", createAbsoluteURL("a.png", base))
	assert.Equal(t, "https://mmbiz.qpic.cn/a.png", createAbsoluteURL("//mmbiz.qpic.cn/a.png", base))
	assert.Equal(t, "https://bing.com/a.png?utm_source=x#y", createAbsoluteURL("https://bing.com/a.png?utm_source=x#y", base))
	assert.Equal(t, "data:image/png;base64,AAAA", createAbsoluteURL("data:image/png;base64,AAAA", base))
	assert.Equal(t, "#bar", createAbsoluteURL("#bar", base))
	assert.Equal(t, "", createAbsoluteURL("", base))
	assert.Equal(t, "a.png", createAbsoluteURL("a.png", nil))
}

func TestWriteTempFile(t *testing.T) {
	path, cleanup, err := writeTempFile("<p>hello</p>", "html")
	require.NoError(t, err)

	assert.Equal(t, ".html", filepath.Ext(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", string(content))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.pdf")
	require.NoError(t, os.WriteFile(path, []byte("12345"), 0o600))

	assert.Equal(t, int64(5), fileSize(path))
	assert.Equal(t, int64(-1), fileSize(filepath.Join(dir, "missing.pdf")))
	assert.Equal(t, int64(-1), fileSize(dir))
}
