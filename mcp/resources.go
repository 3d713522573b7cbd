package mcp

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lvillar/hausdoc"
	"github.com/lvillar/hausdoc/catalog"
)

// RegisterResources adds the catalog and configuration resources of g.
// Parameterised resources take their arguments as a query, e.g.
// catalog://variants?category=walls.
func RegisterResources(s *Server, g *hausdoc.Generator) {
	s.AddResource(Resource{
		URI:         "catalog://categories",
		Name:        "Catalog Categories",
		Description: "All component categories in report order with their display titles and number of variants.",
		MIMEType:    "application/json",
		Handler: func(uri string) ([]ResourceContent, error) {
			return categoriesResource(uri, g.Catalog())
		},
	})

	s.AddResource(Resource{
		URI:         "catalog://variants",
		Name:        "Catalog Variants",
		Description: "Full variant records of one category. Pass the category key as a query parameter: catalog://variants?category=walls",
		MIMEType:    "application/json",
		Handler: func(uri string) ([]ResourceContent, error) {
			return variantsResource(uri, g.Catalog())
		},
	})

	s.AddResource(Resource{
		URI:         "hausdoc://config",
		Name:        "Generator Configuration",
		Description: "The effective generator configuration (paths, company data, layout constants) as YAML.",
		MIMEType:    "application/yaml",
		Handler: func(uri string) ([]ResourceContent, error) {
			data, err := yaml.Marshal(g.Config())
			if err != nil {
				return nil, fmt.Errorf("encoding config: %w", err)
			}
			return []ResourceContent{{URI: uri, MIMEType: "application/yaml", Text: string(data)}}, nil
		},
	})
}

// baseURI strips the query from uri.
func baseURI(uri string) string {
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		return uri[:i]
	}
	return uri
}

// queryParam returns the named query parameter of uri.
func queryParam(uri, name string) string {
	i := strings.IndexByte(uri, '?')
	if i < 0 {
		return ""
	}
	q, err := url.ParseQuery(uri[i+1:])
	if err != nil {
		return ""
	}
	return q.Get(name)
}

func jsonContent(uri string, v any) ([]ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: string(data)}}, nil
}

type categoryInfo struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Label    string `json:"label"`
	Variants int    `json:"variants"`
}

func categoriesResource(uri string, cat catalog.Adapter) ([]ResourceContent, error) {
	var out []categoryInfo
	for _, c := range catalog.Categories() {
		d := c.Descriptor()
		out = append(out, categoryInfo{
			Key:      d.Key,
			Title:    d.Title,
			Label:    d.Label,
			Variants: len(cat.ListByCategory(c)),
		})
	}
	return jsonContent(uri, out)
}

func variantsResource(uri string, cat catalog.Adapter) ([]ResourceContent, error) {
	key := queryParam(uri, "category")
	if key == "" {
		return nil, fmt.Errorf("missing 'category' parameter in URI")
	}
	c, err := catalog.ParseCategory(key)
	if err != nil {
		return nil, err
	}
	variants := cat.ListByCategory(c)
	if variants == nil {
		variants = []*catalog.Variant{}
	}
	return jsonContent(uri, variants)
}
