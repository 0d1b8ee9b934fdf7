package artpdf

import (
	"fmt"
	"io"
	nurl "net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Article is the part of the page that will be rendered.
type Article struct {
	Title   string
	Content *html.Node
	BaseURL *nurl.URL

	// Document is the whole parsed page. Content is one of its nodes.
	Document *html.Node
}

// ExtractArticle parses the page and locates its title and content node.
// The title is read from the meta tag with property cfg.TitleProperty and
// falls back to cfg.DefaultTitle when the tag is missing. If there is no
// element with id cfg.ContentID, ErrContentNotFound is returned.
func ExtractArticle(input io.Reader, baseURL *nurl.URL, cfg Config) (*Article, error) {
	cfg = cfg.withDefaults()

	doc, err := goquery.NewDocumentFromReader(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := cfg.DefaultTitle
	meta := doc.Find("meta[property]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("property", "") == cfg.TitleProperty
	}).First()
	if meta.Length() > 0 {
		title = strings.TrimSpace(meta.AttrOr("content", ""))
	}

	title = SanitizeTitle(title, cfg.MaxTitleLength)
	if title == "" {
		title = SanitizeTitle(cfg.DefaultTitle, cfg.MaxTitleLength)
	}

	content := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == cfg.ContentID
	}).First()
	if content.Length() == 0 {
		return nil, fmt.Errorf("%w: no element with id %q", ErrContentNotFound, cfg.ContentID)
	}

	return &Article{
		Title:    title,
		Content:  content.Get(0),
		BaseURL:  baseURL,
		Document: doc.Get(0),
	}, nil
}
