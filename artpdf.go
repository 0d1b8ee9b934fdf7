// Package artpdf saves a single article page as a PDF document.
//
// The conversion is a straight pipeline: the page is downloaded with one
// GET request, its content node is extracted, the node is repaired so it
// renders without JavaScript (hidden styles removed, lazy images resolved,
// frames and scripts dropped), then it is wrapped in a small styled HTML
// document and handed to an external renderer (wkhtmltopdf or Chrome).
package artpdf
