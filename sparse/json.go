// SPDX-License-Identifier: MIT

// Package sparse - structured interchange document.
//
// Document is the serialization-friendly mirror of Matrix: explicit shape
// plus the entry list in deterministic row-major order. The struct tags
// cover both encoding/json and yaml.v3, so the same document feeds the
// calculator's JSON summaries and YAML job pipelines. Unlike the tolerant
// text codec, FromDocument is strict: documents are produced by programs,
// not typed by hand, so an out-of-range entry is an error, never a skip.

package sparse

import (
	"encoding/json"
	"fmt"
)

// Document is the interchange form of a Matrix.
type Document struct {
	Rows    int     `json:"rows" yaml:"rows"`
	Cols    int     `json:"cols" yaml:"cols"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// ToDocument captures m as an interchange document with entries in
// row-major order. Complexity: O(nnz·log nnz).
func ToDocument(m *Matrix) (Document, error) {
	if err := ValidateNotNil(m); err != nil {
		return Document{}, err
	}

	return Document{Rows: m.rows, Cols: m.cols, Entries: m.Entries()}, nil
}

// FromDocument reconstructs a Matrix from its interchange form.
// Strict path: every entry goes through Set, so out-of-range positions fail
// with ErrOutOfRange and non-finite values (under the default policy) with
// ErrNaNInf. Zero-valued entries are legal and simply not stored. Duplicate
// positions follow Set semantics (last write wins).
func FromDocument(doc Document, opts ...Option) (*Matrix, error) {
	m, err := New(doc.Rows, doc.Cols, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range doc.Entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, fmt.Errorf("FromDocument: %w", err)
		}
	}

	return m, nil
}

// MarshalJSON encodes m via its interchange document, giving Matrix a
// stable, deterministic JSON shape.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	doc, err := ToDocument(m)
	if err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes the interchange document shape into m, replacing
// its previous contents. Decoding uses the strict FromDocument path under
// the default numeric policy.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("sparse: decode document: %w", err)
	}
	decoded, err := FromDocument(doc)
	if err != nil {
		return err
	}
	*m = *decoded

	return nil
}
