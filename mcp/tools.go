package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/lvillar/hausdoc"
	"github.com/lvillar/hausdoc/catalog"
	"github.com/lvillar/hausdoc/submission"
)

// RegisterTools adds the report and catalog tools backed by g.
func RegisterTools(s *Server, g *hausdoc.Generator) {
	s.AddTool(generateReportTool(g))
	s.AddTool(listVariantsTool(g.Catalog()))
	s.AddTool(resolveVariantTool(g.Catalog()))
}

func categorySchema() map[string]any {
	keys := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		keys = append(keys, c.String())
	}
	return map[string]any{
		"type":        "string",
		"enum":        keys,
		"description": "Catalog category key",
	}
}

func generateReportTool(g *hausdoc.Generator) Tool {
	return Tool{
		Name:        "generate_report",
		Description: "Generate the personalised performance description PDF for a house configuration. Pass the submission inline or as a file path. The PDF is written to the configured output directory, or returned as base64 when inline is true. Returns the page manifest.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"submission": map[string]any{
					"type":        "object",
					"description": "Submission record (customer data, one variant id per category, rooms per floor)",
				},
				"submissionPath": map[string]any{
					"type":        "string",
					"description": "Path to a submission JSON file, used when submission is omitted",
				},
				"inline": map[string]any{
					"type":        "boolean",
					"description": "Return the PDF as base64 instead of writing it to the output directory",
				},
			},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			return handleGenerateReport(g, args)
		},
	}
}

func handleGenerateReport(g *hausdoc.Generator, args map[string]any) (ToolResult, error) {
	sub, err := submissionArg(args)
	if err != nil {
		return ToolResult{}, err
	}

	if inline, _ := args["inline"].(bool); inline {
		var buf bytes.Buffer
		m, err := g.Render(&buf, sub)
		if err != nil {
			return ToolResult{}, err
		}
		summary, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return ToolResult{}, err
		}
		return ToolResult{Content: []ContentBlock{
			{Type: "text", Text: string(summary)},
			{Type: "resource", MIMEType: "application/pdf", Data: base64.StdEncoding.EncodeToString(buf.Bytes())},
		}}, nil
	}

	m, err := g.Generate(sub)
	if err != nil {
		return ToolResult{}, err
	}
	summary, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return ToolResult{}, err
	}
	return TextResult(fmt.Sprintf("Report written: %s (%d pages, %d bytes)\n%s", m.Path, len(m.Pages), m.Bytes, summary)), nil
}

// submissionArg decodes the submission from the inline object or, failing
// that, from the file named by submissionPath.
func submissionArg(args map[string]any) (*submission.Submission, error) {
	if raw, ok := args["submission"]; ok && raw != nil {
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("encoding submission: %w", err)
		}
		return submission.Read(bytes.NewReader(data))
	}
	if path, ok := args["submissionPath"].(string); ok && path != "" {
		return submission.Load(path)
	}
	return nil, fmt.Errorf("missing 'submission' or 'submissionPath' argument")
}

func categoryArg(args map[string]any) (catalog.Category, error) {
	key, ok := args["category"].(string)
	if !ok || key == "" {
		return 0, fmt.Errorf("missing 'category' argument")
	}
	return catalog.ParseCategory(key)
}

func listVariantsTool(cat catalog.Adapter) Tool {
	return Tool{
		Name:        "list_variants",
		Description: "List the variants of a catalog category (id, name, short description) in catalog order.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": categorySchema(),
			},
			"required": []string{"category"},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			c, err := categoryArg(args)
			if err != nil {
				return ToolResult{}, err
			}
			type entry struct {
				ID      string `json:"id"`
				Name    string `json:"name"`
				Summary string `json:"summary,omitempty"`
			}
			list := []entry{}
			for _, v := range cat.ListByCategory(c) {
				list = append(list, entry{ID: v.ID, Name: v.Name, Summary: v.Summary()})
			}
			data, _ := json.MarshalIndent(list, "", "  ")
			return TextResult(string(data)), nil
		},
	}
}

func resolveVariantTool(cat catalog.Adapter) Tool {
	return Tool{
		Name:        "resolve_variant",
		Description: "Return the full record of one catalog variant, including technical attributes, premium features and comparison notes.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": categorySchema(),
				"id": map[string]any{
					"type":        "string",
					"description": "Variant id",
				},
			},
			"required": []string{"category", "id"},
		},
		Handler: func(args map[string]any) (ToolResult, error) {
			c, err := categoryArg(args)
			if err != nil {
				return ToolResult{}, err
			}
			id, _ := args["id"].(string)
			v, ok := cat.Resolve(c, id)
			if !ok {
				return ToolResult{}, fmt.Errorf("%s variant %q not found", c, id)
			}
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return ToolResult{}, err
			}
			return TextResult(string(data)), nil
		},
	}
}
