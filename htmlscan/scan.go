// Package htmlscan extracts and parses the srcset attributes of an HTML
// document. Parsing is recoverable per attribute: an invalid attribute value
// is reported alongside the valid ones and does not abort the scan.
package htmlscan

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/prettier/parse-srcset/srcset"
)

// An Attribute is one srcset-bearing attribute found in a document.
type Attribute struct {
	Element string `json:"element"` //tag name, "img" or "source"
	Name    string `json:"name"`    //"srcset" or "data-srcset"
	Value   string `json:"value"`

	//Candidates is nil when Err is set.
	Candidates []srcset.Candidate `json:"candidates,omitempty"`
	Err        error              `json:"error,omitempty"`
}

// attributes whose value uses the srcset micro-grammar.
var srcsetAttributeNames = map[string]struct{}{
	"srcset":      {},
	"data-srcset": {},
}

// Scan parses the document read from r and returns the srcset attributes of
// its <img> and <source> elements, in document order, each with its parse
// result.
func Scan(r io.Reader) ([]Attribute, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return ScanNode(doc), nil
}

// ScanNode is like Scan but starts from an already-parsed node.
func ScanNode(root *html.Node) []Attribute {
	var attributes []Attribute

	walkHTMLNode(root, func(n *html.Node) {
		if n.Type != html.ElementNode || (n.DataAtom != atom.Img && n.DataAtom != atom.Source) {
			return
		}

		for _, attr := range n.Attr {
			if _, ok := srcsetAttributeNames[attr.Key]; !ok {
				continue
			}

			result := Attribute{
				Element: n.Data,
				Name:    attr.Key,
				Value:   attr.Val,
			}
			result.Candidates, result.Err = srcset.Parse(attr.Val)

			attributes = append(attributes, result)
		}
	})

	return attributes
}

func walkHTMLNode(n *html.Node, fn func(n *html.Node)) {
	fn(n)

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walkHTMLNode(child, fn)
	}
}
