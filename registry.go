package hausdoc

import (
	"time"

	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/pages"
	"github.com/lvillar/hausdoc/submission"
)

// PageKind identifies a section of the report.
type PageKind string

const (
	KindTitle         PageKind = "title"
	KindCertification PageKind = "certification"
	KindSummary       PageKind = "summary"
	KindQuality       PageKind = "quality"
	KindService       PageKind = "service"
	KindComponent     PageKind = "component"
	KindFloorPlan     PageKind = "floorplan"
	KindChecklist     PageKind = "checklist"
	KindClosing       PageKind = "closing"
)

// document is the input of one generation as seen by the page registry.
type document struct {
	sub     *submission.Submission
	sel     pages.Selection
	created time.Time
}

// pageSpec describes one page of the report. Pages whose include predicate
// reports false are skipped and do not advance the page number.
type pageSpec struct {
	kind     PageKind
	category catalog.Category // component pages only
	chrome   bool             // draw header and footer
	title    func(env *pages.Env, d *document) string
	include  func(d *document) bool
	render   func(env *pages.Env, ctx pages.Context, d *document) error
}

func (p pageSpec) included(d *document) bool {
	return p.include == nil || p.include(d)
}

// registry returns the page sequence of the report: the mandatory opening
// sections, one detail page per component category, the floor plan, the
// comparison checklist and the closing page.
func registry() []pageSpec {
	specs := []pageSpec{
		{
			kind: KindTitle,
			render: func(env *pages.Env, _ pages.Context, d *document) error {
				env.Title(d.sub, d.created)
				return nil
			},
		},
		staticPage(KindCertification, "certification", "QDF-Zertifizierte Qualität"),
		{
			kind:   KindSummary,
			chrome: true,
			title:  fixedTitle("summary", "Ihre Konfiguration auf einen Blick"),
			render: func(env *pages.Env, ctx pages.Context, d *document) error {
				_, err := env.Summary(ctx, d.sub, d.sel)
				return err
			},
		},
		staticPage(KindQuality, "quality", "Ihre 7 Qualitätsvorteile"),
		staticPage(KindService, "service", "Unser Service für Sie"),
	}

	for _, c := range catalog.Categories() {
		specs = append(specs, componentPage(c))
	}

	return append(specs,
		pageSpec{
			kind:   KindFloorPlan,
			chrome: true,
			title:  func(*pages.Env, *document) string { return "Ihre Raumplanung" },
			include: func(d *document) bool {
				return d.sub.Rooms.Any()
			},
			render: func(env *pages.Env, ctx pages.Context, d *document) error {
				env.FloorPlan(ctx, d.sub.Rooms, d.sel[catalog.InnerWall])
				return nil
			},
		},
		staticPage(KindChecklist, "checklist", "Ihre Checkliste für den Anbietervergleich"),
		pageSpec{
			kind:   KindClosing,
			chrome: true,
			title:  fixedTitle("closing", "Ihre nächsten Schritte"),
			render: func(env *pages.Env, ctx pages.Context, _ *document) error {
				_, err := env.Closing(ctx)
				return err
			},
		},
	)
}

func fixedTitle(key, def string) func(*pages.Env, *document) string {
	return func(env *pages.Env, _ *document) string {
		return env.StaticTitle(key, def)
	}
}

func staticPage(kind PageKind, key, def string) pageSpec {
	return pageSpec{
		kind:   kind,
		chrome: true,
		title:  fixedTitle(key, def),
		render: func(env *pages.Env, ctx pages.Context, _ *document) error {
			_, err := env.Static(ctx, key)
			return err
		},
	}
}

func componentPage(c catalog.Category) pageSpec {
	return pageSpec{
		kind:     KindComponent,
		category: c,
		chrome:   true,
		title: func(*pages.Env, *document) string {
			return c.Descriptor().Title
		},
		include: func(d *document) bool {
			return d.sel[c] != nil
		},
		render: func(env *pages.Env, ctx pages.Context, d *document) error {
			env.Component(ctx, d.sel[c])
			return nil
		},
	}
}
