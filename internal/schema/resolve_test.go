package schema

import (
	"net/http/httptest"
	"sync"
	"testing"
)

func TestResolveCityFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/dumpster-rental-west-jordan-ut", "West Jordan"},
		{"/dumpster-rental-sandy-ut/", "Sandy"},
		{"/dumpster-rental/salt-lake-city", "Salt Lake City"},
		{"/cities/orem", "Orem"},
		{"/provo-dumpster-rental", "Provo"},
		{"/about", ""},
		{"/", ""},
		{"", ""},
		{"/dumpster-rental--ut", ""},
	}
	for _, tc := range cases {
		if got := ResolveCityFromPath(tc.path); got != tc.want {
			t.Fatalf("ResolveCityFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestResolveCitySlugFromPath(t *testing.T) {
	if got := ResolveCitySlugFromPath("/dumpster-rental-west-jordan-ut"); got != "west-jordan" {
		t.Fatalf("unexpected slug: %q", got)
	}
	if got := ResolveCitySlugFromPath("/contact"); got != "" {
		t.Fatalf("expected no slug, got %q", got)
	}
}

func TestCityDisplayName(t *testing.T) {
	if got := CityDisplayName("west-jordan"); got != "West Jordan" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := CityDisplayName("st-george"); got != "St George" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestBaseURLFromRequestOverrideHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/dumpster-rental-sandy-ut", nil)
	r.Header.Set("X-Url", "https://www.icondumpsters.com/dumpster-rental-sandy-ut")
	if got := BaseURLFromRequest(r); got != "https://www.icondumpsters.com" {
		t.Fatalf("unexpected origin: %q", got)
	}
}

func TestBaseURLFromRequestForwardedHeaders(t *testing.T) {
	r := httptest.NewRequest("GET", "/x", nil)
	r.Host = ""
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Forwarded-Host", "staging.icondumpsters.com")
	if got := BaseURLFromRequest(r); got != "https://staging.icondumpsters.com" {
		t.Fatalf("unexpected origin: %q", got)
	}
}

func TestBaseURLFromRequestFallsBackToConfigured(t *testing.T) {
	r := httptest.NewRequest("GET", "/x", nil)
	r.Host = ""
	if got := BaseURLFromRequest(r); got != BaseURL() {
		t.Fatalf("expected configured base, got %q", got)
	}
	if got := BaseURLFromRequest(nil); got != BaseURL() {
		t.Fatalf("nil request must fall back, got %q", got)
	}
}

func TestPageURLFromRequestInvokePath(t *testing.T) {
	r := httptest.NewRequest("GET", "/_render", nil)
	r.Host = "icondumpsters.com"
	r.Header.Set("X-Forwarded-Proto", "https")
	r.Header.Set("X-Invoke-Path", "/dumpster-rental-sandy-ut")
	want := "https://icondumpsters.com/dumpster-rental-sandy-ut"
	if got := PageURLFromRequest(r); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCityDisplayNameConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := CityDisplayName("west-jordan"); got != "West Jordan" {
					t.Errorf("got %q, want %q", got, "West Jordan")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestCityPagePath(t *testing.T) {
	if got := CityPagePath("sandy"); got != "/dumpster-rental-sandy-ut" {
		t.Fatalf("unexpected path: %q", got)
	}
}
