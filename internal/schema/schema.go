// Package schema validates decoded JSON records against declarative
// field specifications before they are mapped onto typed models.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FieldType enumerates the primitive types a field may declare.
type FieldType int

const (
	FieldInt FieldType = iota
	FieldString
	FieldBool
	// FieldEmail is a string with an additional address-shape check.
	FieldEmail
)

func (t FieldType) String() string {
	switch t {
	case FieldInt:
		return "integer"
	case FieldString:
		return "string"
	case FieldBool:
		return "boolean"
	case FieldEmail:
		return "email"
	default:
		return "unknown"
	}
}

// FieldSpec declares one required field of a record.
type FieldSpec struct {
	Name string
	Type FieldType
}

// Schema is the full shape of one input file: a JSON array of records,
// each carrying every declared field.
type Schema struct {
	Name   string
	Fields []FieldSpec
}

// Users is the expected shape of the users input file.
var Users = Schema{
	Name: "users",
	Fields: []FieldSpec{
		{Name: "id", Type: FieldInt},
		{Name: "first_name", Type: FieldString},
		{Name: "last_name", Type: FieldString},
		{Name: "email", Type: FieldEmail},
		{Name: "company_id", Type: FieldInt},
		{Name: "email_status", Type: FieldBool},
		{Name: "active_status", Type: FieldBool},
		{Name: "tokens", Type: FieldInt},
	},
}

// Companies is the expected shape of the companies input file.
var Companies = Schema{
	Name: "companies",
	Fields: []FieldSpec{
		{Name: "id", Type: FieldInt},
		{Name: "name", Type: FieldString},
		{Name: "top_up", Type: FieldInt},
		{Name: "email_status", Type: FieldBool},
	},
}

// Email addresses must fit this length window inclusive.
const (
	emailMinLen = 6
	emailMaxLen = 127
)

// FieldError reports the first schema violation found, with the path
// of the offending value and what was expected there.
type FieldError struct {
	Path     string
	Expected string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: expected %s", e.Path, e.Expected)
}

// Validate checks a decoded JSON value against the schema. The top-level
// value must be an array of objects; numbers are expected as json.Number
// (decode with UseNumber). It stops at the first violation and returns a
// *FieldError describing it.
func Validate(data any, s Schema) error {
	records, ok := data.([]any)
	if !ok {
		return &FieldError{Path: s.Name, Expected: "an array of records"}
	}
	for i, elem := range records {
		record, ok := elem.(map[string]any)
		if !ok {
			return &FieldError{
				Path:     fmt.Sprintf("%s[%d]", s.Name, i),
				Expected: "an object",
			}
		}
		for _, field := range s.Fields {
			path := fmt.Sprintf("%s[%d].%s", s.Name, i, field.Name)
			value, present := record[field.Name]
			if !present {
				return &FieldError{Path: path, Expected: "field to be present"}
			}
			if err := checkValue(path, value, field.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkValue(path string, value any, t FieldType) error {
	switch t {
	case FieldInt:
		num, ok := value.(json.Number)
		if !ok {
			return &FieldError{Path: path, Expected: "an integer"}
		}
		if _, err := num.Int64(); err != nil {
			return &FieldError{Path: path, Expected: "an integer"}
		}
	case FieldString:
		if _, ok := value.(string); !ok {
			return &FieldError{Path: path, Expected: "a string"}
		}
	case FieldBool:
		if _, ok := value.(bool); !ok {
			return &FieldError{Path: path, Expected: "a boolean"}
		}
	case FieldEmail:
		addr, ok := value.(string)
		if !ok {
			return &FieldError{Path: path, Expected: "a string"}
		}
		if err := checkEmail(path, addr); err != nil {
			return err
		}
	}
	return nil
}

// checkEmail enforces the address shape: 6-127 characters, exactly one
// "@", and at least one "." somewhere after it.
func checkEmail(path, addr string) error {
	if len(addr) < emailMinLen || len(addr) > emailMaxLen {
		return &FieldError{
			Path:     path,
			Expected: fmt.Sprintf("an email between %d and %d characters", emailMinLen, emailMaxLen),
		}
	}
	if strings.Count(addr, "@") != 1 {
		return &FieldError{Path: path, Expected: "an email with exactly one @"}
	}
	domain := addr[strings.Index(addr, "@")+1:]
	if !strings.Contains(domain, ".") {
		return &FieldError{Path: path, Expected: "an email with a . after the @"}
	}
	return nil
}
