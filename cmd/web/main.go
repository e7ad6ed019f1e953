package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/icondumpsters/web/internal/blog"
	"github.com/icondumpsters/web/internal/business"
	"github.com/icondumpsters/web/internal/cities"
	handlersPkg "github.com/icondumpsters/web/internal/handlers"
	"github.com/icondumpsters/web/internal/leads"
	mw "github.com/icondumpsters/web/internal/middleware"
	"github.com/icondumpsters/web/internal/schema"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	contentDir   = "content/posts"
	// devMode is set in main() from ICON_WEB_DEV (preferred) or DEV.
	devMode   bool
	tmplCache *template.Template

	logger    *zap.Logger
	metrics   *mw.Metrics
	blogStore *blog.Store
	notifier  *leads.Notifier
	analytics handlersPkg.Analytics
)

func main() {
	var addr, tmplPath, pubPath, postsPath string

	// Port resolution: prefer ICON_WEB_PORT, then Cloud Run's PORT, else 8080
	port := os.Getenv("ICON_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&postsPath, "posts", contentDir, "blog posts directory")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	contentDir = postsPath

	devMode = os.Getenv("ICON_WEB_DEV") != "" || os.Getenv("DEV") != ""

	if base := os.Getenv("ICON_WEB_BASE_URL"); base != "" {
		schema.SetBaseURL(base)
	}

	var err error
	logger, err = mw.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !devMode {
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	metrics = mw.NewMetrics()
	blogStore = blog.NewStore(contentDir)
	notifier = leads.NewNotifier(os.Getenv("ICON_WEB_LEAD_WEBHOOK_URL"), logger)
	analytics = handlersPkg.LoadAnalyticsFromEnv()

	r := newRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening",
		zap.String("addr", addr),
		zap.Bool("dev", devMode),
		zap.String("base_url", schema.BaseURL()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Behind a trusted reverse proxy RealIP resolves the client address
	// from X-Forwarded-For. Only trusted proxies may set these headers.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(mw.CitySchema)
	r.Use(mw.RequestLogger(logger))
	r.Use(metrics.Instrument)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Get("/services", ServicesHandler)
	r.Get("/services/{slug}", ServiceDetailHandler)
	r.Get("/dumpster-sizes", SizesHandler)
	r.Get("/locations", LocationsHandler)
	r.Get("/blog", BlogIndexHandler)
	r.Get("/blog/{slug}", BlogPostHandler)
	r.Get("/contact", ContactHandler)
	r.Post("/contact", ContactSubmitHandler)
	r.Get("/sitemap.xml", SitemapHandler)
	r.Get("/robots.txt", RobotsHandler)

	// Every served city gets its canonical page route.
	for _, slug := range cities.Slugs() {
		r.Get(schema.CityPagePath(slug), CityPageHandler)
	}

	// Legacy city URL shapes 301 to the canonical path.
	r.NotFound(NotFoundHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		// JSON-LD blocks are emitted as-is; encoding/json already escapes
		// <, > and & so the payload cannot break out of the script tag.
		"jsonldScript": func(s string) template.HTML {
			return template.HTML("<script type=\"application/ld+json\">\n" + s + "\n</script>")
		},
	}
	// ParseGlob doesn't support **; walk the tree instead.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes one named page template. In dev mode templates reparse on
// every request.
func render(w http.ResponseWriter, r *http.Request, name string, status int, data handlersPkg.PageData) {
	if s := mw.GetSession(r); s != nil {
		data.CSRFToken = s.CSRFToken
	}
	data.Analytics = analytics
	// Pages that supply no structured data of their own still get a derived
	// LocalBusiness + Service pair when the path resolves to a city.
	if len(data.SEO.JSONLD) == 0 {
		if slug := schema.ResolveCitySlugFromPath(r.URL.Path); slug != "" {
			city, ok := cities.Lookup(slug)
			if !ok {
				city = schema.CityParameters{
					Name:  schema.CityDisplayName(slug),
					Slug:  slug,
					State: "UT",
				}
			}
			canonical := business.Canonical()
			data.SEO.AddSchema(schema.Emit(schema.KindLocalBusiness, schema.DeriveCityBusiness(canonical, city)))
			data.SEO.AddSchema(schema.Emit(schema.KindService, schema.DeriveCityService(canonical, city)))
		}
	}
	if data.SEO.OG.Title == "" {
		data.SEO.OG.Title = data.SEO.Title
	}
	if data.SEO.OG.Description == "" {
		data.SEO.OG.Description = data.SEO.Description
	}
	if data.SEO.OG.URL == "" {
		data.SEO.OG.URL = schema.PageURLFromRequest(r)
	}
	if n := len(data.SEO.JSONLD); n > 0 && metrics != nil {
		metrics.SchemaInjected.Add(float64(n))
	}

	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("template exec", zap.String("template", name), zap.Error(err))
	}
}
