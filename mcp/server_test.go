package mcp

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lvillar/hausdoc"
	"github.com/lvillar/hausdoc/catalog"
)

func newTestServer(t *testing.T) (*Server, *hausdoc.Generator) {
	t.Helper()
	cat, err := catalog.Load(filepath.Join("..", "catalog", "testdata", "catalog.json"))
	if err != nil {
		t.Fatal(err)
	}
	g, err := hausdoc.New(
		hausdoc.WithCatalog(cat),
		hausdoc.WithOutputDir(t.TempDir()),
		hausdoc.WithAssetsDir(t.TempDir()),
		hausdoc.WithLogger(log.New(io.Discard, "", 0)),
	)
	if err != nil {
		t.Fatal(err)
	}
	s := NewServerWithIO("test", nil, nil)
	s.SetLogger(log.New(io.Discard, "", 0))
	RegisterTools(s, g)
	RegisterResources(s, g)
	return s, g
}

func sendRequest(t *testing.T, s *Server, method string, id int, params any) jsonrpcResponse {
	t.Helper()

	req := map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  method,
	}
	if params != nil {
		req["params"] = params
	}

	reqBytes, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	reqBytes = append(reqBytes, '\n')

	var output bytes.Buffer
	s.input = bytes.NewReader(reqBytes)
	s.output = &output

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}

	var resp jsonrpcResponse
	if err := json.Unmarshal(output.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response %q: %v", output.String(), err)
	}
	return resp
}

// toolText returns the concatenated text blocks of a tools/call result.
func toolText(t *testing.T, resp jsonrpcResponse) (string, ToolResult) {
	t.Helper()
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	data, _ := json.Marshal(resp.Result)
	var res ToolResult
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	for _, c := range res.Content {
		sb.WriteString(c.Text)
	}
	return sb.String(), res
}

func TestServerInitialize(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendRequest(t, s, "initialize", 1, map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "1.0"},
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}

	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatal("result is not a map")
	}
	if result["protocolVersion"] != ProtocolVersion {
		t.Fatalf("unexpected protocol version: %v", result["protocolVersion"])
	}
	serverInfo, ok := result["serverInfo"].(map[string]any)
	if !ok {
		t.Fatal("missing serverInfo")
	}
	if serverInfo["name"] != "hausdoc-mcp" || serverInfo["version"] != "test" {
		t.Fatalf("unexpected server info: %v", serverInfo)
	}
}

func TestServerToolsList(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendRequest(t, s, "tools/list", 2, nil)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	result := resp.Result.(map[string]any)
	tools, ok := result["tools"].([]any)
	if !ok {
		t.Fatal("tools is not an array")
	}

	var names []string
	for _, tool := range tools {
		names = append(names, tool.(map[string]any)["name"].(string))
	}
	// sorted by name
	if got := strings.Join(names, ","); got != "generate_report,list_variants,resolve_variant" {
		t.Errorf("tools = %s", got)
	}
}

func TestServerResourcesList(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendRequest(t, s, "resources/list", 3, nil)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	resources, ok := resp.Result.(map[string]any)["resources"].([]any)
	if !ok {
		t.Fatal("resources is not an array")
	}
	if len(resources) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(resources))
	}
}

func TestServerPing(t *testing.T) {
	s := NewServerWithIO("test", nil, nil)

	resp := sendRequest(t, s, "ping", 4, nil)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
}

func TestServerUnknownMethod(t *testing.T) {
	s := NewServerWithIO("test", nil, nil)

	resp := sendRequest(t, s, "nonexistent/method", 5, nil)
	if resp.Error == nil {
		t.Fatal("expected error for unknown method")
	}
	if resp.Error.Code != codeMethodNotFound {
		t.Fatalf("expected error code %d, got %d", codeMethodNotFound, resp.Error.Code)
	}
}

func TestServerUnknownTool(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendRequest(t, s, "tools/call", 6, map[string]any{
		"name":      "nonexistent_tool",
		"arguments": map[string]any{},
	})
	if resp.Error == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestListVariantsTool(t *testing.T) {
	s, _ := newTestServer(t)

	text, _ := toolText(t, sendRequest(t, s, "tools/call", 7, map[string]any{
		"name":      "list_variants",
		"arguments": map[string]any{"category": "walls"},
	}))
	var list []struct{ ID, Name string }
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		t.Fatalf("decoding %q: %v", text, err)
	}
	if len(list) != 2 || list[0].ID != "climativ-esb" || list[1].ID != "climativ-plus" {
		t.Errorf("variants = %+v", list)
	}

	text, res := toolText(t, sendRequest(t, s, "tools/call", 8, map[string]any{
		"name":      "list_variants",
		"arguments": map[string]any{"category": "brochures"},
	}))
	if !res.IsError || !strings.Contains(text, "unknown category") {
		t.Errorf("unknown category: %q", text)
	}
}

func TestResolveVariantTool(t *testing.T) {
	s, _ := newTestServer(t)

	text, res := toolText(t, sendRequest(t, s, "tools/call", 9, map[string]any{
		"name":      "resolve_variant",
		"arguments": map[string]any{"category": "lueftung", "id": "zentral"},
	}))
	if res.IsError || !strings.Contains(text, `"id": "zentral"`) {
		t.Errorf("resolve: %s", text)
	}

	text, res = toolText(t, sendRequest(t, s, "tools/call", 10, map[string]any{
		"name":      "resolve_variant",
		"arguments": map[string]any{"category": "decken", "id": "holzbalken"},
	}))
	if !res.IsError || !strings.Contains(text, `decken variant "holzbalken" not found`) {
		t.Errorf("missing variant: %s", text)
	}
}

func TestGenerateReportTool(t *testing.T) {
	s, g := newTestServer(t)
	path, _ := filepath.Abs(filepath.Join("..", "submission", "testdata", "golden.json"))

	text, res := toolText(t, sendRequest(t, s, "tools/call", 11, map[string]any{
		"name":      "generate_report",
		"arguments": map[string]any{"submissionPath": path},
	}))
	if res.IsError {
		t.Fatalf("generate_report failed: %s", text)
	}
	want := filepath.Join(g.Config().OutputDir, "Leistungsbeschreibung_f79184a8-8bad-4667-b0ed-d457319454d3.pdf")
	if !strings.Contains(text, "Report written: "+want) {
		t.Errorf("result = %s", text)
	}
	if _, err := os.Stat(want); err != nil {
		t.Error(err)
	}
}

func TestGenerateReportInline(t *testing.T) {
	s, _ := newTestServer(t)

	_, res := toolText(t, sendRequest(t, s, "tools/call", 12, map[string]any{
		"name": "generate_report",
		"arguments": map[string]any{
			"inline": true,
			"submission": map[string]any{
				"id":               "inline-1",
				"bauherr_nachname": "Muster",
				"wall":             "climativ-plus",
				"lueftung":         "keine",
			},
		},
	}))
	if res.IsError || len(res.Content) != 2 {
		t.Fatalf("result = %+v", res)
	}
	if !strings.Contains(res.Content[0].Text, `"submission_id": "inline-1"`) {
		t.Errorf("manifest = %s", res.Content[0].Text)
	}
	pdf, err := base64.StdEncoding.DecodeString(res.Content[1].Data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("inline data is not a PDF: %q", pdf[:min(len(pdf), 8)])
	}
}

func TestGenerateReportMissingSubmission(t *testing.T) {
	s, _ := newTestServer(t)

	text, res := toolText(t, sendRequest(t, s, "tools/call", 13, map[string]any{
		"name":      "generate_report",
		"arguments": map[string]any{},
	}))
	if !res.IsError || !strings.Contains(text, "missing 'submission'") {
		t.Errorf("result = %s", text)
	}
}

func TestVariantsResource(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendRequest(t, s, "resources/read", 14, map[string]any{"uri": "catalog://variants?category=heizung"})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	data, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(data), "viessmann") {
		t.Errorf("resource = %s", data)
	}

	resp = sendRequest(t, s, "resources/read", 15, map[string]any{"uri": "catalog://variants"})
	if resp.Error == nil || resp.Error.Code != codeInternalError {
		t.Errorf("missing category: %+v", resp.Error)
	}
}

func TestConfigResource(t *testing.T) {
	s, _ := newTestServer(t)

	resp := sendRequest(t, s, "resources/read", 16, map[string]any{"uri": "hausdoc://config"})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error.Message)
	}
	data, _ := json.Marshal(resp.Result)
	if !strings.Contains(string(data), "file_prefix: Leistungsbeschreibung_") {
		t.Errorf("config resource = %s", data)
	}
}

func TestServerMultipleRequests(t *testing.T) {
	requests := []string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"resources/read","params":{"uri":"catalog://categories"}}`,
		`{"jsonrpc":"2.0","id":4,"method":"ping"}`,
	}

	s, _ := newTestServer(t)
	var output bytes.Buffer
	s.input = strings.NewReader(strings.Join(requests, "\n") + "\n")
	s.output = &output

	if err := s.Run(); err != nil {
		t.Fatal(err)
	}

	// the notification gets no response
	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 responses, got %d: %s", len(lines), output.String())
	}
	for i, line := range lines {
		var resp jsonrpcResponse
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("response %d: unmarshal error: %v\nline: %s", i, err, line)
		}
		if resp.Error != nil {
			t.Errorf("response %d: unexpected error: %s", i, resp.Error.Message)
		}
	}
	if !strings.Contains(lines[2], `\"title\": \"Außenwandsystem\"`) {
		t.Errorf("categories resource = %s", lines[2])
	}
}

func TestToolAddTool(t *testing.T) {
	s := NewServerWithIO("test", nil, nil)

	s.AddTool(Tool{
		Name:        "custom_tool",
		Description: "A custom test tool",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
		Handler: func(map[string]any) (ToolResult, error) {
			return TextResult("custom result"), nil
		},
	})

	text, _ := toolText(t, sendRequest(t, s, "tools/call", 1, map[string]any{
		"name": "custom_tool",
	}))
	if text != "custom result" {
		t.Fatalf("unexpected result: %s", text)
	}
}
