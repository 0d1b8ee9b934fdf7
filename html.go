package artpdf

import (
	"html/template"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body {
	font-family: "Microsoft YaHei", sans-serif;
	padding: 20px;
}
img {
	max-width: 100% !important;
	height: auto !important;
	display: block;
	margin: 10px auto;
}
pre, code {
	white-space: pre-wrap;
	word-break: break-all;
	background: #f5f5f5;
}
.export-title {
	font-size: 24px;
	font-weight: bold;
	margin-bottom: 20px;
	text-align: center;
}
</style>
</head>
<body>
<div class="export-title">{{.Title}}</div>
{{.Content}}
</body>
</html>
`))

type documentData struct {
	Title   string
	Content template.HTML
}

// AssembleDocument wraps the content node in a standalone HTML document,
// with the title as visible heading and a fixed style sheet which scales
// images to the page width.
func AssembleDocument(title string, content *html.Node) (string, error) {
	data := documentData{Title: title}
	if content != nil {
		// #nosec G203 -- content is the sanitized article node
		data.Content = template.HTML(dom.OuterHTML(content))
	}

	var sb strings.Builder
	if err := documentTemplate.Execute(&sb, data); err != nil {
		return "", err
	}

	return sb.String(), nil
}
