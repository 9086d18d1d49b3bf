package extract

import (
	"fmt"
	"os"
	"unicode/utf8"

	"setpiece-service/internal/domain/takers"
)

// ExtractFile reads the report at inputPath, parses it, and writes the
// structured JSON document to outputPath. Any failure (unreadable input,
// non-UTF-8 content, unwritable output) is returned to the caller; nothing
// is retried and a partially written output file is not cleaned up.
func (e *Extractor) ExtractFile(inputPath, outputPath string) (*takers.Document, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", inputPath, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read report %s: content is not valid UTF-8", inputPath)
	}

	doc := e.Parse(string(data))

	out, err := doc.EncodeIndent()
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return nil, fmt.Errorf("write document %s: %w", outputPath, err)
	}
	return doc, nil
}
