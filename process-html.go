package artpdf

import (
	nurl "net/url"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// SanitizeContent repairs the content node in place so it can be rendered
// without JavaScript. The caller must not touch the subtree while this runs.
//
// It does these steps :
// - Remove inline style of the content node, which hides it by default
// - Convert data-src and data-srcset attribute in images to src and srcset
// - Remove inline style of images, which are used to defer their rendering
// - Convert relative image URL into absolute URL
// - Remove all iframe, script and noscript
//
// All steps are best effort, so this never fails. Running it twice gives
// the same tree as running it once.
func SanitizeContent(content *html.Node, baseURL *nurl.URL) {
	if content == nil {
		return
	}

	dom.RemoveAttribute(content, "style")
	convertLazyImageAttrs(content)
	convertRelativeImageURLs(content, baseURL)
	removeEmbeds(content)
}

// convertLazyImageAttrs copies the real image URL, which lazy images keep
// in data-src and data-srcset, into src and srcset. It also removes the
// inline style, since it's often used to set zero height on images that
// haven't been loaded yet.
func convertLazyImageAttrs(root *html.Node) {
	for _, img := range dom.GetElementsByTagName(root, "img") {
		if dataSrc := dom.GetAttribute(img, "data-src"); dataSrc != "" {
			dom.SetAttribute(img, "src", dataSrc)
		}

		if dataSrcset := dom.GetAttribute(img, "data-srcset"); dataSrcset != "" {
			dom.SetAttribute(img, "srcset", dataSrcset)
		}

		dom.RemoveAttribute(img, "style")
	}
}

// convertRelativeImageURLs converts relative and protocol-relative image
// URL into absolute URL. The markup is rendered from a local file, so
// relative URL wouldn't point to the original site anymore.
func convertRelativeImageURLs(root *html.Node, baseURL *nurl.URL) {
	if baseURL == nil {
		return
	}

	for _, img := range dom.GetElementsByTagName(root, "img") {
		if dom.HasAttribute(img, "src") {
			src := dom.GetAttribute(img, "src")
			dom.SetAttribute(img, "src", createAbsoluteURL(src, baseURL))
		}
	}
}

// removeEmbeds removes iframe, script and noscript from the subtree. The
// renderer can't play videos or run scripts, and they tend to break layout.
func removeEmbeds(root *html.Node) {
	embeds := dom.GetAllNodesWithTag(root, "iframe", "script", "noscript")
	dom.RemoveNodes(embeds, nil)
}
