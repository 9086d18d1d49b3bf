package takers

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ClubRecord holds the categorized set-piece takers extracted for one club.
// Slices are never nil so the record always serializes with four arrays.
type ClubRecord struct {
	Penalties                []string `json:"penalties"`
	DirectFreeKicks          []string `json:"direct_free_kicks"`
	CornersIndirectFreeKicks []string `json:"corners_indirect_free_kicks"`
	Notes                    []string `json:"notes"`
}

// NewClubRecord returns a record with empty (non-nil) taker lists.
func NewClubRecord() ClubRecord {
	return ClubRecord{
		Penalties:                []string{},
		DirectFreeKicks:          []string{},
		CornersIndirectFreeKicks: []string{},
		Notes:                    []string{},
	}
}

// Document maps club name to ClubRecord while preserving insertion order.
// Clubs are keyed in roster order, which a plain map cannot guarantee when
// marshaled, so the document carries its own key sequence.
type Document struct {
	clubs   []string
	records map[string]ClubRecord
}

// NewDocument constructs an empty document.
func NewDocument() *Document {
	return &Document{
		records: make(map[string]ClubRecord),
	}
}

// Set stores the record for a club, appending it to the key order on first
// insert and replacing in place afterwards.
func (d *Document) Set(club string, rec ClubRecord) {
	if d.records == nil {
		d.records = make(map[string]ClubRecord)
	}
	if _, ok := d.records[club]; !ok {
		d.clubs = append(d.clubs, club)
	}
	d.records[club] = rec
}

// Get returns the record for a club if present.
func (d *Document) Get(club string) (ClubRecord, bool) {
	if d == nil {
		return ClubRecord{}, false
	}
	rec, ok := d.records[club]
	return rec, ok
}

// Clubs returns the club names in document order.
func (d *Document) Clubs() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.clubs))
	copy(out, d.clubs)
	return out
}

// Len reports the number of clubs in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.clubs)
}

// MarshalJSON emits the document as a JSON object with keys in document
// order rather than the sorted order encoding/json applies to maps. Values
// are encoded without HTML escaping so note lines keep literal ampersands.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, club := range d.clubs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(club)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(d.records[club])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encode appends a trailing newline.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON rebuilds the document preserving the key order found in the
// input, so a round-trip through a snapshot keeps roster ordering intact.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("takers document: expected JSON object, got %v", tok)
	}

	d.clubs = nil
	d.records = make(map[string]ClubRecord)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		club, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("takers document: expected string key, got %v", keyTok)
		}
		var rec ClubRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("takers document: decode record for %q: %w", club, err)
		}
		d.Set(club, rec)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
