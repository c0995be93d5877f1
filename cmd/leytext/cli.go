package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/smendoza/leytext/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Pipeline is wired by Main.Run for the run command.
	Pipeline *pipeline.Pipeline

	// RunID identifies this invocation in trace output.
	RunID string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run   RunCmd   `cmd:"" help:"Fetch, segment, validate and persist the labor code"`
	Check CheckCmd `cmd:"" help:"Validate an existing processed JSON document"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URL            string `help:"Source page URL" default:"${url}"`
	Mode           string `help:"Storage mode" enum:"local,gcs" default:"${mode}"`
	OutDir         string `help:"Output directory for local mode" default:"${out_dir}"`
	Bucket         string `help:"GCS bucket name (required for gcs mode)" default:"${bucket}"`
	Prefix         string `help:"GCS object key prefix" default:"${prefix}"`
	ExpectedTotal  int    `help:"Expected article count" default:"${expected_total}"`
	SkipValidation bool   `help:"Skip the quality validation stage" default:"${skip_validation}"`
	StrictChapters bool   `help:"Treat zero-article chapters as structural errors" default:"${strict_chapters}"`
	Extractor      string `help:"Text extraction strategy" enum:"goquery,readability" default:"${extractor}"`
	Timeout        string `help:"Fetch timeout" default:"${timeout}"`
	Config         string `help:"YAML config file" type:"path" default:""`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Path           string  `arg:"" help:"Path to a processed JSON file, or object name with --bucket"`
	Bucket         string  `help:"Read the document from this GCS bucket instead of disk"`
	Prefix         string  `help:"GCS object key prefix"`
	ExpectedTotal  int     `name:"expected-total" help:"Expected article count" default:"413"`
	MinBodyLength  int     `help:"Minimum article body length" default:"20"`
	MaxSymbolRatio float64 `help:"Maximum non-alphanumeric character ratio" default:"0.30"`
}
