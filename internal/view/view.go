// Package view renders the server-side HTML pages. Every page shares one
// layout holding the navigation, the footer and the toast host.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"dootrec/internal/dto/request"
	"dootrec/internal/dto/response"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "layout.html"

// Page names.
const (
	PageHome       = "home"
	PageExplore    = "explore"
	PageGenres     = "genres"
	PageCommunity  = "community"
	PageProfile    = "profile"
	PageReview     = "review"
	PageReviewForm = "review_form"
	PageWatchlist  = "watchlist"
	PageNotFound   = "not_found"
)

type NavItem struct {
	Label string
	Href  string
	Key   string
}

var Nav = []NavItem{
	{Label: "Home", Href: "/", Key: PageHome},
	{Label: "Explore", Href: "/explore", Key: PageExplore},
	{Label: "Genres", Href: "/genres", Key: PageGenres},
	{Label: "Community", Href: "/community", Key: PageCommunity},
	{Label: "Watchlist", Href: "/watchlist", Key: PageWatchlist},
	{Label: "New Review", Href: "/review/new", Key: PageReviewForm},
	{Label: "Profile", Href: "/profile/me", Key: PageProfile},
}

// Page is the data handed to the layout. Content is the page-specific part.
type Page struct {
	AppName string
	Title   string
	Active  string
	Nav     []NavItem
	Toast   *response.Toast
	Year    int
	Content any
}

type ExploreView struct {
	*response.ExploreResponse
	Genres   []response.GenreResponse
	PrevLink string
	NextLink string
}

type ProfileView struct {
	*response.ProfileResponse
	Tab string
}

// ReviewFormView is the review form's local state between round trips.
type ReviewFormView struct {
	Form       request.SubmitReviewRequest
	GenreInput string
	Errors     map[string]string
}

type NotFoundView struct {
	Message   string
	BackHref  string
	BackLabel string
}

type Renderer struct {
	pages   map[string]*template.Template
	appName string
	now     func() time.Time
	log     *zap.Logger
}

func New(appName string, log *zap.Logger) (*Renderer, error) {
	base, err := template.New(layoutFile).Funcs(funcs).ParseFS(templateFS, "templates/"+layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name+".html" == layoutFile {
			continue
		}

		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[name] = t
	}

	return &Renderer{
		pages:   pages,
		appName: appName,
		now:     time.Now,
		log:     log.With(zap.String("component", "view")),
	}, nil
}

// Render writes the named page inside the layout. The page is rendered into
// a buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	t, ok := r.pages[name]
	if !ok {
		r.log.Error("Unknown page", zap.String("page", name))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if page.AppName == "" {
		page.AppName = r.appName
	}
	if page.Active == "" {
		page.Active = name
	}
	page.Nav = Nav
	page.Year = r.now().Year()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutFile, page); err != nil {
		r.log.Error("Failed to render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.log.Debug("Client went away mid-response", zap.String("page", name), zap.Error(err))
	}
}

var funcs = template.FuncMap{
	"join": strings.Join,
}
