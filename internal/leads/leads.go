// Package leads models quote-form submissions. Leads are not stored; they
// are logged and handed to a best-effort webhook notifier, and the page
// thanks the visitor either way.
package leads

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sizes the quote form offers. Kept in sync with the pricing table.
var Sizes = []string{"15-yard", "20-yard", "30-yard", "not-sure"}

// Lead is one quote request.
type Lead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Zip          string    `json:"zip,omitempty"`
	DumpsterSize string    `json:"dumpster_size,omitempty"`
	Message      string    `json:"message,omitempty"`
	SourcePath   string    `json:"source_path,omitempty"`
	City         string    `json:"city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

// FromForm builds a Lead from submitted form values. sourcePath and city
// record which page produced the lead. The returned FieldErrors is nil when
// the submission is valid.
func FromForm(form url.Values, sourcePath, city string) (Lead, FieldErrors) {
	lead := Lead{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(form.Get("name")),
		Phone:        strings.TrimSpace(form.Get("phone")),
		Email:        strings.TrimSpace(form.Get("email")),
		Zip:          strings.TrimSpace(form.Get("zip")),
		DumpsterSize: strings.TrimSpace(form.Get("dumpster_size")),
		Message:      strings.TrimSpace(form.Get("message")),
		SourcePath:   sourcePath,
		City:         city,
		CreatedAt:    time.Now().UTC(),
	}

	errs := FieldErrors{}
	if lead.Name == "" {
		errs["name"] = "Please tell us your name."
	}
	if lead.Phone == "" && lead.Email == "" {
		errs["phone"] = "We need a phone number or email to reach you."
	}
	if lead.Phone != "" && digitCount(lead.Phone) < 10 {
		errs["phone"] = "That phone number looks incomplete."
	}
	if lead.Email != "" && !looksLikeEmail(lead.Email) {
		errs["email"] = "That email address looks invalid."
	}
	if lead.Zip != "" && !looksLikeZip(lead.Zip) {
		errs["zip"] = "ZIP codes are five digits."
	}
	if lead.DumpsterSize != "" && !validSize(lead.DumpsterSize) {
		errs["dumpster_size"] = fmt.Sprintf("Unknown size %q.", lead.DumpsterSize)
	}
	if len(errs) == 0 {
		return lead, nil
	}
	return lead, errs
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}

func looksLikeZip(s string) bool {
	if len(s) != 5 {
		return false
	}
	return digitCount(s) == 5
}

func validSize(s string) bool {
	for _, allowed := range Sizes {
		if s == allowed {
			return true
		}
	}
	return false
}
