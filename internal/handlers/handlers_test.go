package handlers

import (
	"strings"
	"testing"

	"github.com/icondumpsters/web/internal/leads"
)

func TestBuildHomeDataCarriesStructuredData(t *testing.T) {
	data, meta := BuildHomeData()
	if len(data.Sizes) != 3 {
		t.Fatalf("expected 3 size cards, got %d", len(data.Sizes))
	}
	if len(meta.JSONLD) != 5 {
		t.Fatalf("expected 5 structured data blocks, got %d", len(meta.JSONLD))
	}
	joined := strings.Join(meta.JSONLD, "\n")
	for _, want := range []string{`"Organization"`, `"LocalBusiness"`, `"WebSite"`, `"ItemList"`, `"FAQPage"`} {
		if !strings.Contains(joined, want) {
			t.Errorf("home JSON-LD missing %s", want)
		}
	}
}

func TestBuildCityData(t *testing.T) {
	data, meta, ok := BuildCityData("sandy")
	if !ok {
		t.Fatal("sandy should resolve")
	}
	if data.Business.Name != "Icon Dumpsters - Sandy, UT" {
		t.Fatalf("derived name = %q", data.Business.Name)
	}
	if meta.Canonical != "https://icondumpsters.com/dumpster-rental-sandy-ut" {
		t.Fatalf("canonical = %q", meta.Canonical)
	}
	joined := strings.Join(meta.JSONLD, "\n")
	for _, want := range []string{`"LocalBusiness"`, `"Service"`, `"FAQPage"`, `"BreadcrumbList"`} {
		if !strings.Contains(joined, want) {
			t.Errorf("city JSON-LD missing %s", want)
		}
	}
	if len(data.Nearby) == 0 {
		t.Error("expected nearby city links")
	}
	for _, n := range data.Nearby {
		if n.Slug == "sandy" {
			t.Error("nearby list should not include the city itself")
		}
	}
}

func TestBuildCityDataUnknownSlug(t *testing.T) {
	if _, _, ok := BuildCityData("las-vegas"); ok {
		t.Fatal("unserved city should not resolve")
	}
}

func TestBuildServiceData(t *testing.T) {
	card, meta, ok := BuildServiceData("residential-dumpster-rental")
	if !ok {
		t.Fatal("expected known service slug")
	}
	if card.Name != "Residential Dumpster Rental" {
		t.Fatalf("card name = %q", card.Name)
	}
	joined := strings.Join(meta.JSONLD, "\n")
	if !strings.Contains(joined, `"Service"`) || !strings.Contains(joined, `"BreadcrumbList"`) {
		t.Errorf("service JSON-LD incomplete: %s", joined)
	}
	if _, _, ok := BuildServiceData("nope"); ok {
		t.Fatal("unknown service slug should not resolve")
	}
}

func TestContactWithErrorsKeepsValues(t *testing.T) {
	lead := leads.Lead{Name: "Jane", Phone: "801-555-0142", DumpsterSize: "20-yard"}
	data := ContactWithErrors(lead, leads.FieldErrors{"email": "bad"})
	if data.Values["name"] != "Jane" || data.Values["dumpster_size"] != "20-yard" {
		t.Fatalf("values not kept: %v", data.Values)
	}
	if data.Errors["email"] == "" {
		t.Fatal("errors not kept")
	}
}

func TestBasePageLayoutFields(t *testing.T) {
	p := BasePage("/dumpster-sizes")
	if p.Phone == "" || p.Email == "" {
		t.Fatal("contact details missing")
	}
	if p.PhonePretty != "(801) 918-6000" {
		t.Fatalf("unexpected display number: %q", p.PhonePretty)
	}
	if len(p.Nav) == 0 {
		t.Fatal("nav missing")
	}
	if len(p.Breadcrumbs) < 2 {
		t.Fatalf("breadcrumbs = %v", p.Breadcrumbs)
	}
	if p.SEO.Canonical != "https://icondumpsters.com/dumpster-sizes" {
		t.Fatalf("canonical = %q", p.SEO.Canonical)
	}
}
