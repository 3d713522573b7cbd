// Command hausdoc-mcp is an MCP (Model Context Protocol) server that exposes
// report generation and the product catalog to AI assistants.
//
// # Installation
//
//	go install github.com/lvillar/hausdoc/cmd/hausdoc-mcp@latest
//
// # Available Tools
//
//   - generate_report: render the report for a submission
//   - list_variants: list the variants of a category
//   - resolve_variant: full record of one variant
//
// # Available Resources
//
//   - catalog://categories : categories with titles and variant counts
//   - catalog://variants?category=... : variants of one category
//   - hausdoc://config : effective configuration
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lvillar/hausdoc"
	"github.com/lvillar/hausdoc/config"
	"github.com/lvillar/hausdoc/mcp"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	logFile := flag.String("log", "", "Path to log file (if empty, logs to stderr)")
	flag.Parse()

	// stdout carries the protocol
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hausdoc-mcp: opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hausdoc-mcp: %v\n", err)
		os.Exit(1)
	}
	gen, err := hausdoc.New(hausdoc.WithConfig(cfg), hausdoc.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "hausdoc-mcp: %v\n", err)
		os.Exit(1)
	}

	server := mcp.NewServer(version)
	server.SetLogger(logger)
	mcp.RegisterTools(server, gen)
	mcp.RegisterResources(server, gen)

	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hausdoc-mcp: %v\n", err)
		os.Exit(1)
	}
}
