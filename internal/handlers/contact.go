package handlers

import (
	"github.com/icondumpsters/web/internal/leads"
	"github.com/icondumpsters/web/internal/seo"
)

// ContactData is the view model for the quote form page, before and after
// submission.
type ContactData struct {
	Sizes     []string
	Values    map[string]string
	Errors    leads.FieldErrors
	Submitted bool
}

// BuildContactData constructs the blank quote form view model.
func BuildContactData() (ContactData, seo.Meta) {
	meta := seo.Meta{
		Title:       "Get a Free Quote | Icon Dumpsters",
		Description: "Tell us about your project and we'll call back with a flat-rate quote, usually within the hour.",
		Canonical:   seo.CanonicalFor("/contact"),
	}
	return ContactData{Sizes: leads.Sizes, Values: map[string]string{}}, meta
}

// ContactWithErrors rebuilds the form view model after a failed submission,
// keeping what the visitor typed.
func ContactWithErrors(lead leads.Lead, errs leads.FieldErrors) ContactData {
	data, _ := BuildContactData()
	data.Errors = errs
	data.Values = map[string]string{
		"name":          lead.Name,
		"phone":         lead.Phone,
		"email":         lead.Email,
		"zip":           lead.Zip,
		"dumpster_size": lead.DumpsterSize,
		"message":       lead.Message,
	}
	return data
}
