// Package loader reads an input file, parses it as JSON and validates it
// against a schema before decoding into typed models. Every failure is
// terminal for that file and carries a Kind identifying the stage.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/stoik/topup/internal/models"
	"github.com/stoik/topup/internal/schema"
)

// Kind identifies which loading stage failed.
type Kind int

const (
	// NotFound: the path does not exist.
	NotFound Kind = iota
	// ReadFailure: the file exists but could not be read.
	ReadFailure
	// ParseFailure: the bytes are not valid JSON.
	ParseFailure
	// SchemaViolation: the JSON does not match the declared schema.
	SchemaViolation
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ReadFailure:
		return "read failure"
	case ParseFailure:
		return "parse failure"
	case SchemaViolation:
		return "schema violation"
	default:
		return "unknown"
	}
}

// Error is a loading failure for a single file.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load reads and parses the file at path, validates the result against s,
// and returns the raw bytes. Failures return a *Error whose Kind names the
// stage that failed.
func Load(path string, s schema.Schema) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &Error{Kind: NotFound, Path: path, Err: err}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ReadFailure, Path: path, Err: err}
	}

	data, err := decode(raw)
	if err != nil {
		return nil, &Error{Kind: ParseFailure, Path: path, Err: err}
	}

	if err := schema.Validate(data, s); err != nil {
		return nil, &Error{Kind: SchemaViolation, Path: path, Err: err}
	}

	return raw, nil
}

// decode parses the raw bytes as JSON, keeping numbers as json.Number so
// the schema can tell integers from floats. Whether the top-level value is
// the expected array is the schema's concern, not the parser's.
func decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadUsers loads and validates the users file, returning typed records.
func LoadUsers(path string) ([]models.User, error) {
	raw, err := Load(path, schema.Users)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, &Error{Kind: ParseFailure, Path: path, Err: err}
	}
	return users, nil
}

// LoadCompanies loads and validates the companies file, returning typed records.
func LoadCompanies(path string) ([]models.Company, error) {
	raw, err := Load(path, schema.Companies)
	if err != nil {
		return nil, err
	}

	var companies []models.Company
	if err := json.Unmarshal(raw, &companies); err != nil {
		return nil, &Error{Kind: ParseFailure, Path: path, Err: err}
	}
	return companies, nil
}
