// Command agenthub runs a declarative agent pipeline:
//
//	agenthub workflow.yaml --input '{"input":"hello"}'
//
// The final payload is printed to stdout as indented JSON. Diagnostics go to
// stderr, their verbosity controlled by AGENTHUB_LOG_LEVEL. With --watch the
// workflow is re-run on every save until interrupted.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/agenthub"
	"github.com/hupe1980/agenthub/core"
	"github.com/hupe1980/agenthub/internal/config"
	"github.com/hupe1980/agenthub/logging"
	"github.com/hupe1980/agenthub/pipeline"
)

const usage = "usage: agenthub <workflow.yaml> [--input '<json>'] [--watch] | --list | --schema"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("agenthub", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	input := fs.String("input", "{}", "Initial payload as a JSON object")
	list := fs.Bool("list", false, "Print registered agent names and exit")
	schema := fs.Bool("schema", false, "Print the workflow JSON Schema and exit")
	watch := fs.Bool("watch", false, "Re-run the workflow whenever the file changes")

	workflow, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *schema {
		data, err := pipeline.MarshalJSONSchema()
		if err != nil {
			fmt.Fprintf(stderr, "Schema generation failed: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	logCfg := cfg.Logging()
	logCfg.Output = stderr
	logger := logging.New(logCfg)

	hub, err := agenthub.New(func(o *agenthub.Options) {
		o.StrictRegistry = cfg.StrictRegistry
		o.Logger = logger
	})
	if err != nil {
		fmt.Fprintf(stderr, "Agent discovery failed: %v\n", err)
		return 1
	}

	if *list {
		for _, name := range hub.Agents() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	if workflow == "" {
		fs.Usage()
		return 2
	}

	var initial core.Payload
	if err := json.Unmarshal([]byte(*input), &initial); err != nil {
		fmt.Fprintf(stderr, "Invalid JSON for --input: %v\n", err)
		return 1
	}

	code := runOnce(ctx, hub, workflow, initial, stdout, stderr)
	if !*watch {
		return code
	}

	logger.Info("watching workflow", "path", workflow)
	if err := watchFile(ctx, workflow, func() {
		runOnce(ctx, hub, workflow, initial, stdout, stderr)
	}); err != nil {
		fmt.Fprintf(stderr, "Watch failed: %v\n", err)
		return 1
	}

	return 0
}

func runOnce(ctx context.Context, hub *agenthub.Hub, workflow string, initial core.Payload, stdout, stderr io.Writer) int {
	result, err := hub.RunFile(ctx, workflow, initial)
	if err != nil {
		fmt.Fprintf(stderr, "Workflow execution failed: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(stderr, "Workflow execution failed: encode result: %v\n", err)
		return 1
	}

	return 0
}

// parseArgs accepts flags before and after the workflow path.
func parseArgs(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return "", nil
	}

	workflow := rest[0]
	if err := fs.Parse(rest[1:]); err != nil {
		return "", err
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return "", errors.New("unexpected arguments")
	}

	return workflow, nil
}
