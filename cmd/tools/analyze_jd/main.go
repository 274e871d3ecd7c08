// Command analyze_jd runs the analysis pipeline on a job description from a
// file or stdin and prints the JSON result. Useful for smoke-testing prompt
// changes without the HTTP layer.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"interview-prep/internal/analysis"
	"interview-prep/internal/config"
	"interview-prep/internal/gemini"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "-", "Path to a job-description text file, or - for stdin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var jd []byte
	if file == "-" {
		jd, err = io.ReadAll(os.Stdin)
	} else {
		jd, err = os.ReadFile(file)
	}
	if err != nil {
		log.Fatalf("read job description: %v", err)
	}

	llm := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RetryPolicy(), cfg.HTTPTimeout)
	svc := analysis.NewService(llm)

	result, err := svc.Analyze(context.Background(), string(jd))
	if err != nil {
		log.Fatalf("analyze failed: %v", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}
