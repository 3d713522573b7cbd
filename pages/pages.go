// Package pages draws the sections of the house report: title page, static
// information pages, the executive summary, one detail page per component,
// the floor plan and the closing page.
//
// Every renderer takes a Context holding the vertical cursor of the current
// page and returns the cursor below what it drew. Renderers keep no state
// between calls; values one renderer produces for another (such as the
// efficiency metric of a component) are passed along explicitly.
package pages

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"

	"github.com/lvillar/hausdoc/assets"
	"github.com/lvillar/hausdoc/config"
	"github.com/lvillar/hausdoc/doctpl"
	"github.com/lvillar/hausdoc/surface"
)

// Content bounds of a page. The header ends at ContentTop, the footer starts
// at FooterTop.
const (
	MarginLeft   = 60.0
	ContentWidth = 475.0
	ContentTop   = 100.0
	FooterTop    = 800.0
)

// Context is the transient state of one page while it is drawn.
type Context struct {
	Page  int     // physical page number, 1-based
	Y     float64 // vertical cursor
	Width float64 // content width
}

// NewContext returns the context of page n with the cursor below the header.
func NewContext(n int) Context {
	return Context{Page: n, Y: ContentTop, Width: ContentWidth}
}

//go:embed content/*.json
var contentFS embed.FS

// Content returns the built-in static page templates.
func Content() (*doctpl.Document, error) {
	entries, err := fs.ReadDir(contentFS, "content")
	if err != nil {
		return nil, fmt.Errorf("pages: reading content: %w", err)
	}
	all := &doctpl.Document{}
	for _, e := range entries {
		data, err := contentFS.ReadFile(path.Join("content", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("pages: reading %s: %w", e.Name(), err)
		}
		doc, err := doctpl.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("pages: %s: %w", e.Name(), err)
		}
		all.Pages = append(all.Pages, doc.Pages...)
	}
	return all, nil
}

// Env bundles what every renderer of one document needs. An Env belongs to a
// single document and must not be shared between concurrent generations.
type Env struct {
	S       surface.Surface
	Palette doctpl.Palette
	Config  *config.Config
	Assets  *assets.Resolver
	Content *doctpl.Document
	Log     *log.Logger
}

// NewEnv returns an Env drawing on s. A nil logger discards diagnostics.
func NewEnv(s surface.Surface, cfg *config.Config, content *doctpl.Document, logger *log.Logger) *Env {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Env{
		S:       s,
		Palette: doctpl.DefaultPalette(),
		Config:  cfg,
		Assets:  assets.New(cfg.AssetsDir),
		Content: content,
		Log:     logger,
	}
}

func (e *Env) logf(format string, args ...any) {
	e.Log.Printf("[pages] "+format, args...)
}

// vars are the placeholders available to static templates.
func (e *Env) vars() map[string]string {
	c := e.Config.Company
	return map[string]string{
		"company":       c.Name,
		"company_short": shortName(c.Name),
		"tagline":       c.Tagline,
		"website":       c.Website,
		"email":         c.Email,
		"phone":         c.Phone,
	}
}

// renderer returns a block renderer for the standard content column.
func (e *Env) renderer() *doctpl.Renderer {
	r := doctpl.NewRenderer(e.S, e.vars())
	r.Palette = e.Palette
	r.X, r.Width = MarginLeft, ContentWidth
	return r
}

// Static draws the template page key below the header and returns the
// cursor. A missing template draws nothing.
func (e *Env) Static(ctx Context, key string) (float64, error) {
	if e.Content == nil {
		return ctx.Y, nil
	}
	p, ok := e.Content.Lookup(key)
	if !ok {
		e.logf("no content for page %q", key)
		return ctx.Y, nil
	}
	r := e.renderer()
	r.MaxY = e.bottom()
	r.OnSkip = func(i int, b doctpl.Block) {
		e.logf("%s: %s block %d omitted, no space left", key, b.Type, i+1)
	}
	return r.Render(p.Blocks, ctx.Y)
}

// StaticTitle returns the header title of template page key, or def.
func (e *Env) StaticTitle(key, def string) string {
	if e.Content != nil {
		if p, ok := e.Content.Lookup(key); ok && p.Title != "" {
			return p.Title
		}
	}
	return def
}

// bottom returns the lowest y content may reach.
func (e *Env) bottom() float64 {
	if b := e.Config.Layout.ContentBottom; b > 0 {
		return b
	}
	return 790
}
