// Package etree provides element-tree based parsing of the XML event feed.
package etree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"eventpdf/internal/domain/entities"
)

// FeedParser parses XML feed documents into event entities
type FeedParser struct{}

// NewFeedParser creates a new feed parser
func NewFeedParser() *FeedParser {
	return &FeedParser{}
}

// ParseFile parses an XML feed file into events
func (p *FeedParser) ParseFile(filePath string) ([]*entities.Event, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(filePath); err != nil {
		return nil, fmt.Errorf("failed to read feed %s: %w", filePath, err)
	}
	return p.parseDocument(doc)
}

// Parse parses XML feed bytes into events
func (p *FeedParser) Parse(data []byte) ([]*entities.Event, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse feed XML: %w", err)
	}
	return p.parseDocument(doc)
}

func (p *FeedParser) parseDocument(doc *etree.Document) ([]*entities.Event, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("feed has no root element")
	}

	// Every child element of the root is one event. The feed is schema-less,
	// so unknown child tags are carried along untouched.
	elements := root.ChildElements()
	events := make([]*entities.Event, 0, len(elements))
	for _, el := range elements {
		events = append(events, p.toEvent(el))
	}
	return events, nil
}

func (p *FeedParser) toEvent(el *etree.Element) *entities.Event {
	attrib := make(map[string]string, len(el.Attr))
	for _, attr := range el.Attr {
		attrib[attr.Key] = attr.Value
	}

	// First text content wins when a tag repeats, matching findtext semantics.
	texts := make(map[string]string)
	for _, child := range el.ChildElements() {
		if _, seen := texts[child.Tag]; seen {
			continue
		}
		texts[child.Tag] = strings.TrimSpace(child.Text())
	}

	return entities.NewEvent(el.Tag, attrib, texts)
}
