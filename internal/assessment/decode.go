// Package assessment decodes assessment reports into the planner's input contract.
package assessment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"planner-backend/internal/planning"
)

// MaxBytes caps the size of a single assessment document.
const MaxBytes = 5 << 20

// Format is the serialization of an assessment document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported assessment format")
	ErrTooLarge          = errors.New("assessment document too large")
)

// ParseFormat parses a format name. Empty means JSON.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// FormatFromContentType maps a request Content-Type to a Format.
// A missing Content-Type is treated as JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if strings.TrimSpace(contentType) == "" {
		return FormatJSON, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, contentType)
	}
	switch mediaType {
	case "application/json", "text/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, mediaType)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads one assessment document and converts it to a planning.Assessment.
func Decode(r io.Reader, format Format) (planning.Assessment, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return planning.Assessment{}, fmt.Errorf("read assessment: %w", err)
	}
	if len(data) > MaxBytes {
		return planning.Assessment{}, ErrTooLarge
	}
	return DecodeBytes(data, format)
}

// DecodeBytes converts an in-memory assessment document.
func DecodeBytes(data []byte, format Format) (planning.Assessment, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return planning.Assessment{}, &planning.InvalidInputError{Field: "body", Reason: "assessment document is empty"}
	}

	var doc document
	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &doc); err != nil {
			return planning.Assessment{}, &planning.InvalidInputError{Field: "body", Reason: "malformed json: " + err.Error()}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return planning.Assessment{}, &planning.InvalidInputError{Field: "body", Reason: "malformed yaml: " + err.Error()}
		}
	default:
		return planning.Assessment{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
	return doc.toAssessment()
}
