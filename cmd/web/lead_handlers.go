package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	handlersPkg "github.com/icondumpsters/web/internal/handlers"
	"github.com/icondumpsters/web/internal/leads"
	mw "github.com/icondumpsters/web/internal/middleware"
)

// ContactHandler renders the quote form.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	data, meta := handlersPkg.BuildContactData()
	page := handlersPkg.BasePage(r.URL.Path)
	page.Title = meta.Title
	page.SEO = meta
	page.Contact = data
	render(w, r, "contact", http.StatusOK, page)
}

// ContactSubmitHandler validates and forwards a quote request. Invalid
// submissions re-render the form with what the visitor typed; valid ones
// get a thank-you regardless of webhook delivery.
func ContactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	source := r.PostForm.Get("source_path")
	if source == "" {
		source = r.URL.Path
	}
	lead, errs := leads.FromForm(r.PostForm, source, mw.CityFromContext(r.Context()))
	if errs != nil {
		page := handlersPkg.BasePage("/contact")
		data := handlersPkg.ContactWithErrors(lead, errs)
		page.Title = "Get a Free Quote | Icon Dumpsters"
		page.Contact = data
		if mw.IsHTMX(r.Context()) {
			render(w, r, "contact_form", http.StatusUnprocessableEntity, page)
			return
		}
		render(w, r, "contact", http.StatusUnprocessableEntity, page)
		return
	}

	logger.Info("lead received",
		zap.String("lead_id", lead.ID),
		zap.String("source_path", lead.SourcePath),
		zap.String("city", lead.City),
		zap.String("size", lead.DumpsterSize),
	)
	metrics.LeadsSubmitted.Inc()

	// Forward off the request path; the visitor never waits on the webhook.
	go func(lead leads.Lead) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = notifier.Notify(ctx, lead)
	}(lead)

	page := handlersPkg.BasePage("/contact")
	data, _ := handlersPkg.BuildContactData()
	data.Submitted = true
	page.Title = "Quote Request Received | Icon Dumpsters"
	page.Contact = data
	if mw.IsHTMX(r.Context()) {
		render(w, r, "contact_form", http.StatusOK, page)
		return
	}
	render(w, r, "contact", http.StatusOK, page)
}
