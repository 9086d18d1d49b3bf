package takers

import (
	"bytes"
	"encoding/json"
)

// EncodeIndent serializes the document as pretty-printed JSON with 4-space
// indentation. HTML escaping is disabled so player names keep their literal
// characters; non-ASCII (e.g. "Ødegaard") is never escaped by encoding/json.
func (d *Document) EncodeIndent() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
