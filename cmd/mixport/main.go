// Package main provides the mixport CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/nkreft/mixport/internal/app/conversion"
	"github.com/nkreft/mixport/internal/app/watch"
	"github.com/nkreft/mixport/internal/format"
	"github.com/nkreft/mixport/internal/format/rekordbox"
	"github.com/nkreft/mixport/internal/format/traktor"
	"github.com/nkreft/mixport/internal/infra/config"
	"github.com/nkreft/mixport/internal/infra/logger"
)

var (
	app        = kingpin.New("mixport", "DJ library converter (Traktor NML to Rekordbox XML)")
	configPath = app.Flag("config", "Path to config file").String()
	logLevel   = app.Flag("log-level", "Log level: debug, info, warn, error").Envar("MIXPORT_LOG_LEVEL").String()

	// convert command
	convertCmd     = app.Command("convert", "Convert a library file")
	convertInput   = convertCmd.Arg("input", "Input library file").Required().String()
	convertOutput  = convertCmd.Arg("output", "Output library file").Required().String()
	convertFrom    = convertCmd.Flag("from", "Input format").String()
	convertTo      = convertCmd.Flag("to", "Output format").String()
	convertHotCues = convertCmd.Flag("hot-to-memory", "Serialize hot cues as memory cues").Bool()

	// watch command
	watchCmd     = app.Command("watch", "Re-convert whenever the input file changes")
	watchInput   = watchCmd.Arg("input", "Input library file").Required().String()
	watchOutput  = watchCmd.Arg("output", "Output library file").Required().String()
	watchFrom    = watchCmd.Flag("from", "Input format").String()
	watchTo      = watchCmd.Flag("to", "Output format").String()
	watchHotCues = watchCmd.Flag("hot-to-memory", "Serialize hot cues as memory cues").Bool()

	// formats command
	formatsCmd = app.Command("formats", "List supported formats").Alias("list")
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Output: cfg.Log.Output, File: cfg.Log.File}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry := format.NewRegistry()
	registry.RegisterImporter(traktor.NewImporter())
	registry.RegisterExporter(rekordbox.NewExporter(rekordbox.Product{
		Name:    cfg.Product.Name,
		Version: cfg.Product.Version,
		Company: cfg.Product.Company,
	}))

	orchestrator := conversion.New(registry)
	orchestrator.SetProgressFunc(func(percent int, message string) {
		fmt.Printf("[%3d%%] %s\n", percent, message)
	})

	switch command {
	case convertCmd.FullCommand():
		req := buildRequest(cfg, *convertInput, *convertOutput, *convertFrom, *convertTo, *convertHotCues)
		if err := orchestrator.Convert(req); err != nil {
			zlog.Error().Err(err).Msg("conversion failed")
			os.Exit(1)
		}

	case watchCmd.FullCommand():
		req := buildRequest(cfg, *watchInput, *watchOutput, *watchFrom, *watchTo, *watchHotCues)
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := watch.New(orchestrator, req, time.Duration(cfg.Watch.DebounceMs)*time.Millisecond)
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			zlog.Error().Err(err).Msg("watch failed")
			os.Exit(1)
		}

	case formatsCmd.FullCommand():
		fmt.Println("Import formats:")
		for _, name := range registry.ImportFormats() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("Export formats:")
		for _, name := range registry.ExportFormats() {
			fmt.Printf("  %s\n", name)
		}
	}
}

func loadConfig() (*config.Config, error) {
	if *configPath != "" {
		return config.Load(*configPath)
	}
	return config.Default()
}

func buildRequest(cfg *config.Config, input, output, from, to string, hotToMemory bool) conversion.Request {
	if from == "" {
		from = cfg.Convert.DefaultInputFormat
	}
	if to == "" {
		to = cfg.Convert.DefaultOutputFormat
	}

	opts := format.Options{}
	for k, v := range cfg.Convert.Options {
		opts[k] = v
	}
	if hotToMemory {
		opts[format.OptConvertHotCuesToMemoryCues] = true
	}

	return conversion.Request{
		InputPath:    input,
		InputFormat:  from,
		OutputPath:   output,
		OutputFormat: to,
		Options:      opts,
	}
}
