// Package markup enforces the restricted HTML subset allowed in question
// content and solutions before they are persisted.
package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// allowedTags is the markup subset generated content may carry: paragraphs,
// code blocks, emphasis, lists and line breaks.
var allowedTags = map[string]bool{
	"p": true, "br": true,
	"pre": true, "code": true,
	"strong": true, "em": true, "b": true, "i": true,
	"ul": true, "ol": true, "li": true,
}

// dropTags are removed together with their children; their content is never
// user-visible text.
var dropTags = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true, "embed": true,
}

// Sanitize strips everything outside the allowed subset from an HTML
// fragment: disallowed elements are unwrapped (their children survive),
// script-like elements are removed entirely, and all attributes are
// dropped. The result is the cleaned inner HTML of the fragment.
func Sanitize(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}

	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		if dropTags[goquery.NodeName(s)] {
			s.Remove()
		}
	})

	// Collect before mutating: unwrapping while iterating would skip nodes.
	var disallowed []*html.Node
	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if !allowedTags[node.Data] {
			disallowed = append(disallowed, node)
		} else {
			node.Attr = nil
		}
	})

	for _, node := range disallowed {
		unwrap(node)
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// unwrap replaces a node with its children.
func unwrap(node *html.Node) {
	parent := node.Parent
	if parent == nil {
		return
	}
	for node.FirstChild != nil {
		child := node.FirstChild
		node.RemoveChild(child)
		parent.InsertBefore(child, node)
	}
	parent.RemoveChild(node)
}
