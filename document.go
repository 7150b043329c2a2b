package transparence

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RawDocument is one fetched declaration document, exactly as published.
// It is produced by the fetch collaborator (see the hatvp package) and never
// mutated by the engine.
type RawDocument struct {
	// Body is the raw markup content.
	Body []byte
	// Locator is the URL or path the document was obtained from.
	Locator string
	// Category is the document category declared by the source index. The
	// category stated inside the document takes precedence when it parses;
	// this one covers documents that omit it.
	Category Category
}

// redactedMarker is the placeholder the publisher substitutes for withheld
// values; it carries no data and is treated as an empty field.
const redactedMarker = "[Données non publiées]"

// node is one element of a parsed document tree. The tree is deliberately
// generic: section and field names drift across schema versions, so lookups
// go through ordered name-variant tables instead of struct tags.
type node struct {
	name     string
	text     string
	children []*node
}

// parseDocument builds the node tree for a document body.
func parseDocument(body []byte) (*node, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var root *node
	var stack []*node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("malformed document: content after root element")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("malformed document: unbalanced end element")
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("malformed document: no root element")
	}
	root.walk(func(n *node) {
		n.text = strings.TrimSpace(n.text)
	})
	return root, nil
}

// walk visits n and all its descendants in document order.
func (n *node) walk(fn func(*node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

// child returns the first direct child with the given local name, or nil.
func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// at descends a "/"-separated path of child names and returns the node
// reached, or nil if any segment is missing.
func (n *node) at(path string) *node {
	cur := n
	for _, seg := range strings.Split(path, "/") {
		if cur = cur.child(seg); cur == nil {
			return nil
		}
	}
	return cur
}

// textAt returns the trimmed text at path. Redacted placeholders count as
// empty.
func (n *node) textAt(path string) string {
	t := n.at(path)
	if t == nil || t.text == redactedMarker {
		return ""
	}
	return t.text
}

// boolAt reports whether the text at path is "true" (any case).
func (n *node) boolAt(path string) bool {
	return strings.EqualFold(n.textAt(path), "true")
}

// find returns the first node with the given name in a depth-first walk of
// n's subtree (n itself included), or nil.
func (n *node) find(name string) *node {
	if n.name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.find(name); found != nil {
			return found
		}
	}
	return nil
}

// hasContent reports whether any node of the subtree carries non-empty,
// non-redacted text. Structurally present but content-free placeholders
// occur in the source data and must not become records.
func (n *node) hasContent() bool {
	if n.text != "" && n.text != redactedMarker {
		return true
	}
	for _, c := range n.children {
		if c.hasContent() {
			return true
		}
	}
	return false
}
