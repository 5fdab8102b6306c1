// Package report renders company results into the fixed text report and
// writes it out. The layout is an external contract: byte-for-byte stable
// for the same input.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/stoik/topup/internal/models"
)

// WriteError is a failure to produce the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: write failure: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Format renders the results in order. Each company block opens with a
// blank line; the section headers print even when their list is empty;
// the total line sits at company-field indentation.
func Format(results []models.CompanyResult) string {
	var b strings.Builder
	for _, result := range results {
		company := result.Company
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Company Id: %d\n", company.ID)
		fmt.Fprintf(&b, "  Company Name: %s\n", company.Name)
		b.WriteString("  Users Emailed:\n")
		writeUsers(&b, result.Emailed)
		b.WriteString("  Users Not Emailed:\n")
		writeUsers(&b, result.NotEmailed)
		fmt.Fprintf(&b, "  Total amount of top ups for %s: %d\n", company.Name, result.TotalTopUps)
	}
	return b.String()
}

func writeUsers(b *strings.Builder, users []models.ProcessedUser) {
	for _, user := range users {
		fmt.Fprintf(b, "    %s, %s, %s\n", user.LastName, user.FirstName, user.Email)
		fmt.Fprintf(b, "      Previous Token Balance %d\n", user.Tokens)
		fmt.Fprintf(b, "      New Token Balance %d\n", user.NewBalance)
	}
}

// Write puts the report at path, creating or truncating the file. The
// handle is closed on every path, including mid-write failure; a partial
// file after an error is not a supported artifact.
func Write(text, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	_, werr := f.Write([]byte(text))
	cerr := f.Close()
	if werr != nil {
		return &WriteError{Path: path, Err: werr}
	}
	if cerr != nil {
		return &WriteError{Path: path, Err: cerr}
	}
	return nil
}
