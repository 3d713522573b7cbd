// Command hausdoc renders the Leistungsbeschreibung PDF for one submission.
//
//	hausdoc -submission anfrage.json -out ./generated_pdfs
//
// Without -config the defaults are used; -catalog, -out, -assets and
// -watermark override the corresponding configuration fields. With -o - the
// PDF is written to stdout instead of the output directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lvillar/hausdoc"
	"github.com/lvillar/hausdoc/config"
	"github.com/lvillar/hausdoc/submission"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML config file (defaults are used if empty or missing)")
		catalogP   = flag.String("catalog", "", "Path to catalog JSON (overrides catalog_path)")
		subPath    = flag.String("submission", "", "Path to submission JSON file")
		outDir     = flag.String("out", "", "Output directory (overrides output_dir)")
		output     = flag.String("o", "", "Write the PDF to this file instead, or - for stdout")
		assetsDir  = flag.String("assets", "", "Assets root (overrides assets_dir)")
		watermark  = flag.String("watermark", "", "Watermark text drawn on every content page, e.g. ENTWURF")
		logFile    = flag.String("log", "", "Path to log file (if empty, logs to stderr)")
		manifest   = flag.Bool("manifest", false, "Print the page manifest as JSON")
	)
	flag.Parse()

	if *subPath == "" {
		fmt.Fprintln(os.Stderr, "hausdoc: -submission is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("hausdoc: opening log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("hausdoc: %v", err)
	}
	if *catalogP != "" {
		cfg.CatalogPath = *catalogP
	}
	if *watermark != "" {
		cfg.Watermark = *watermark
	}

	gen, err := hausdoc.New(
		hausdoc.WithConfig(cfg),
		hausdoc.WithOutputDir(*outDir),
		hausdoc.WithAssetsDir(*assetsDir),
		hausdoc.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("hausdoc: %v", err)
	}

	sub, err := submission.Load(*subPath)
	if err != nil {
		log.Fatalf("hausdoc: %v", err)
	}

	m, err := run(gen, sub, *output)
	if err != nil {
		log.Fatalf("hausdoc: %v", err)
	}

	if *manifest {
		enc := json.NewEncoder(os.Stderr)
		if *output == "" {
			enc = json.NewEncoder(os.Stdout)
		}
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			log.Fatalf("hausdoc: %v", err)
		}
	} else if m.Path != "" {
		fmt.Println(m.Path)
	}
}

// run generates into the output directory, or into the file or stream named
// by output.
func run(gen *hausdoc.Generator, sub *submission.Submission, output string) (*hausdoc.Manifest, error) {
	switch output {
	case "":
		return gen.Generate(sub)
	case "-":
		return gen.Render(os.Stdout, sub)
	}
	f, err := os.Create(output)
	if err != nil {
		return nil, err
	}
	m, err := gen.Render(f, sub)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		os.Remove(output)
		return nil, err
	}
	m.Path = output
	return m, nil
}
