// Package hausdoc generates the personalised performance description
// ("Leistungsbeschreibung") of a prefabricated house as a PDF.
//
// A Generator combines a product catalog with one customer submission. The
// report consists of fixed opening sections, one detail page per chosen
// component, an optional floor plan, a comparison checklist and a closing
// page. Which pages exist is decided by a declarative page registry; missing
// catalog entries, assets and rooms shrink the report instead of failing it.
//
// Example:
//
//	gen, err := hausdoc.New(hausdoc.WithOutputDir("./out"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := gen.Generate(sub)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Path, len(m.Pages))
package hausdoc

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/config"
	"github.com/lvillar/hausdoc/doctpl"
	"github.com/lvillar/hausdoc/pages"
	"github.com/lvillar/hausdoc/submission"
	"github.com/lvillar/hausdoc/surface"
)

// PageInfo describes one emitted page.
type PageInfo struct {
	Number    int      `json:"number"`
	Kind      PageKind `json:"kind"`
	Title     string   `json:"title,omitempty"`
	Category  string   `json:"category,omitempty"`
	VariantID string   `json:"variant_id,omitempty"`
}

// Manifest is the result of one generation.
type Manifest struct {
	SubmissionID string     `json:"submission_id"`
	Path         string     `json:"path,omitempty"`
	Bytes        int64      `json:"bytes"`
	Pages        []PageInfo `json:"pages"`
}

// Count returns the number of pages of the given kind.
func (m *Manifest) Count(kind PageKind) int {
	n := 0
	for _, p := range m.Pages {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

// HasCategory reports whether a detail page for category key was emitted.
func (m *Manifest) HasCategory(key string) bool {
	for _, p := range m.Pages {
		if p.Kind == KindComponent && p.Category == key {
			return true
		}
	}
	return false
}

// Generator produces reports. It holds no per-document state and may be used
// by several goroutines at once.
type Generator struct {
	cfg     *config.Config
	catalog catalog.Adapter
	content *doctpl.Document
	log     *log.Logger
	now     func() time.Time
	pages   []pageSpec
}

// New returns a Generator. Without WithCatalog the catalog is loaded from
// the configured catalog path.
func New(opts ...Option) (*Generator, error) {
	gc := &generatorConfig{}
	for _, opt := range opts {
		opt(gc)
	}

	cfg := config.Default()
	if gc.cfg != nil {
		c := *gc.cfg
		cfg = &c
	}
	if gc.outputDir != "" {
		cfg.OutputDir = gc.outputDir
	}
	if gc.assetsDir != "" {
		cfg.AssetsDir = gc.assetsDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("hausdoc: %w", err)
	}

	g := &Generator{
		cfg:     cfg,
		catalog: gc.catalog,
		log:     gc.logger,
		now:     gc.now,
		pages:   registry(),
	}
	if g.log == nil {
		g.log = log.New(os.Stderr, "", log.LstdFlags)
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.catalog == nil {
		cat, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("hausdoc: loading catalog: %w", err)
		}
		g.catalog = cat
	}
	content, err := pages.Content()
	if err != nil {
		return nil, fmt.Errorf("hausdoc: %w", err)
	}
	g.content = content
	return g, nil
}

// Config returns the effective configuration. It must not be modified.
func (g *Generator) Config() *config.Config { return g.cfg }

// Catalog returns the catalog variants are resolved from.
func (g *Generator) Catalog() catalog.Adapter { return g.catalog }

func (g *Generator) logf(format string, args ...any) {
	g.log.Printf("[report] "+format, args...)
}

// FileName returns the output file name for sub: prefix, sanitised id and
// extension.
func (g *Generator) FileName(sub *submission.Submission) string {
	return g.cfg.FilePrefix + sub.SafeID() + g.cfg.FileExt
}

// Generate renders sub into the output directory, creating it if needed.
// The file is written under a temporary name and renamed once it is
// complete, so a failed generation never leaves a partial report behind. A
// submission without a usable id is rendered under a fresh one, reported in
// the manifest; sub itself is not modified.
func (g *Generator) Generate(sub *submission.Submission) (*Manifest, error) {
	if sub == nil {
		return nil, newReportError("generate", "", ErrNoSubmission, nil)
	}
	if sub.SafeID() == "" {
		s := *sub
		s.ID = submission.NewID()
		g.logf("submission without id, assigned %s", s.ID)
		sub = &s
	}

	dir := g.cfg.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, newReportError("mkdir", sub.ID, ErrOutputDir, err)
	}
	final := filepath.Join(dir, g.FileName(sub))

	tmp, err := os.CreateTemp(dir, ".hausdoc-*.tmp")
	if err != nil {
		return nil, newReportError("create", sub.ID, ErrOutputStream, err)
	}
	m, err := g.Render(tmp, sub)
	if cerr := tmp.Close(); err == nil && cerr != nil {
		err = newReportError("close", sub.ID, ErrOutputStream, cerr)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return nil, err
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return nil, newReportError("rename", sub.ID, ErrOutputStream, err)
	}
	m.Path = final
	g.logf("%s: wrote %s (%d pages, %d bytes)", sub.ID, final, len(m.Pages), m.Bytes)
	return m, nil
}

// Render writes the report for sub to w and returns its manifest.
func (g *Generator) Render(w io.Writer, sub *submission.Submission) (*Manifest, error) {
	if sub == nil {
		return nil, newReportError("render", "", ErrNoSubmission, nil)
	}
	d := g.prepare(sub)

	pdf := surface.NewPDF(g.cfg.Layout.MaxImageDimension)
	pdf.SetMeta(surface.Meta{
		Title:   "Leistungsbeschreibung " + familyName(sub),
		Author:  g.cfg.Company.Name,
		Subject: "Hauskonfiguration " + sub.ID,
		Creator: "hausdoc",
		Created: d.created,
	})

	m, err := g.compose(pdf, d)
	if err != nil {
		return nil, err
	}
	if err := pdf.Err(); err != nil {
		return nil, newReportError("render", sub.ID, ErrRender, err)
	}

	cw := &countingWriter{w: w}
	if err := pdf.Output(cw); err != nil {
		return nil, newReportError("write", sub.ID, ErrOutputStream, err)
	}
	m.Bytes = cw.n
	return m, nil
}

// compose walks the page registry and draws every included page on s.
func (g *Generator) compose(s surface.Surface, d *document) (*Manifest, error) {
	env := pages.NewEnv(s, g.cfg, g.content, g.log)
	m := &Manifest{SubmissionID: d.sub.ID}

	n := 0
	for _, spec := range g.pages {
		if !spec.included(d) {
			continue
		}
		n++
		s.AddPage()
		ctx := pages.NewContext(n)

		info := PageInfo{Number: n, Kind: spec.kind}
		if spec.kind == KindComponent {
			info.Category = spec.category.String()
			info.VariantID = d.sel[spec.category].ID
		}
		if spec.chrome {
			info.Title = spec.title(env, d)
			ctx.Y = env.Header(ctx, info.Title)
		}
		if err := spec.render(env, ctx, d); err != nil {
			return nil, newReportError("render", d.sub.ID, ErrRender, fmt.Errorf("page %d (%s): %w", n, spec.kind, err))
		}
		if spec.chrome {
			env.Footer(ctx)
		}
		m.Pages = append(m.Pages, info)
	}
	return m, nil
}

// prepare resolves every variant the submission references. A selection
// that cannot be resolved is logged and left out; the ventilation selection
// is ignored when it is empty or the "none" sentinel.
func (g *Generator) prepare(sub *submission.Submission) *document {
	d := &document{sub: sub, sel: pages.Selection{}, created: sub.Timestamp.Time}
	if d.created.IsZero() {
		d.created = g.now()
	}
	for _, c := range catalog.Categories() {
		if c == catalog.Ventilation && !sub.WantsVentilation() {
			continue
		}
		id := sub.VariantID(c)
		if id == "" {
			g.logf("%s: no %s selected, page omitted", sub.ID, c)
			continue
		}
		v, ok := g.catalog.Resolve(c, id)
		if !ok {
			g.logf("%s: %s variant %q not found, page omitted", sub.ID, c, id)
			continue
		}
		d.sel[c] = v
	}
	return d
}

func familyName(sub *submission.Submission) string {
	if sub.LastName != "" {
		return "Familie " + sub.LastName
	}
	return sub.FullName()
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// IsOutputError reports whether err is an output directory or stream
// failure, the only errors a valid submission can produce.
func IsOutputError(err error) bool {
	return errors.Is(err, ErrOutputDir) || errors.Is(err, ErrOutputStream)
}
