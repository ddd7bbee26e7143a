// Package page extracts colour-bearing resources from HTML documents.
package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document holds the parts of a page that can carry colour declarations,
// each in document order.
type Document struct {
	// StyleBlocks are the text bodies of <style> elements.
	StyleBlocks []string

	// InlineStyles are the values of style attributes on any element.
	InlineStyles []string

	// Stylesheets are the raw href values of <link rel="stylesheet"> elements.
	Stylesheets []string

	// Images are the raw src values of <img> elements.
	Images []string
}

// Parse reads an HTML document and collects its style sources.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc := &Document{}
	for n := range root.Descendants() {
		if n.Type != html.ElementNode {
			continue
		}

		if style, ok := attr(n, "style"); ok {
			doc.InlineStyles = append(doc.InlineStyles, style)
		}

		switch n.DataAtom {
		case atom.Style:
			doc.StyleBlocks = append(doc.StyleBlocks, textContent(n))
		case atom.Link:
			href, ok := attr(n, "href")
			if ok && isStylesheet(n) {
				doc.Stylesheets = append(doc.Stylesheets, strings.TrimSpace(href))
			}
		case atom.Img:
			if src, ok := attr(n, "src"); ok && strings.TrimSpace(src) != "" {
				doc.Images = append(doc.Images, strings.TrimSpace(src))
			}
		}
	}

	return doc, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FirstImages returns at most n image sources.
func (d *Document) FirstImages(n int) []string {
	if n < 0 {
		n = 0
	}
	if len(d.Images) <= n {
		return d.Images
	}
	return d.Images[:n]
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// isStylesheet reports whether a <link> has "stylesheet" among its rel tokens.
func isStylesheet(n *html.Node) bool {
	rel, ok := attr(n, "rel")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(rel) {
		if strings.EqualFold(token, "stylesheet") {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := range n.Descendants() {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
