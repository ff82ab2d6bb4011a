// Package targets turns command flags (a single email or a file path)
// into a deduplicated, normalized, validated list of target emails.
package targets

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidEmail marks a syntactically invalid --email value.
// The command layer maps it to a usage error.
var ErrInvalidEmail = errors.New("invalid email address")

// ErrEmptyEmail marks an empty --email value.
var ErrEmptyEmail = errors.New("--email value is empty")

// FileError wraps an unreadable input file. The command layer maps it
// to the file I/O exit code, distinct from row-validation failures.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// RowError is one validation failure inside an input file.
type RowError struct {
	Line    int    `json:"line"`
	Column  string `json:"column"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

func (e RowError) String() string {
	s := fmt.Sprintf("line %d", e.Line)
	if e.Column != "" {
		s += fmt.Sprintf(", column %q", e.Column)
	}
	s += ": " + e.Message
	if e.Value != "" {
		s += fmt.Sprintf(" (%q)", e.Value)
	}
	return s
}

// Targets is a resolved set of target emails plus any row errors the
// file parser reported. Emails are lowercase, syntactically valid, and
// deduplicated preserving first-seen order.
type Targets struct {
	Emails []string
	Errors []RowError
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Normalize lowercases and trims an email for comparison and storage.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Resolve builds the target list from --email / --file flags.
// Returns nil when neither flag is provided; the caller treats that as
// a usage error. Exactly one of the two is expected.
func Resolve(email, file string) (*Targets, error) {
	if email != "" {
		normalized := Normalize(email)
		if normalized == "" {
			return nil, ErrEmptyEmail
		}
		if !ValidEmail(normalized) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, email)
		}
		return &Targets{Emails: []string{normalized}}, nil
	}

	if file != "" {
		emails, rowErrs, err := ParseEmailList(file)
		if err != nil {
			return nil, err
		}
		return &Targets{Emails: emails, Errors: rowErrs}, nil
	}

	return nil, nil
}

// dedupe removes duplicates preserving first-seen order. Inputs are
// already normalized.
func dedupe(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	result := make([]string, 0, len(emails))
	for _, e := range emails {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		result = append(result, e)
	}
	return result
}
