package freecad

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteDocument serializes a document as indented JSON.
func WriteDocument(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("writing document %q: %w", d.Name, err)
	}
	return nil
}

// ReadDocument parses a document previously written by WriteDocument.
func ReadDocument(r io.Reader) (*Document, error) {
	var d Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return &d, nil
}
