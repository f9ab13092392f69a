package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/parsecv/parsecv/internal/common"
	"github.com/parsecv/parsecv/internal/extract"
	"github.com/parsecv/parsecv/internal/llm"
	"github.com/parsecv/parsecv/internal/llm/openai"
	"github.com/parsecv/parsecv/internal/merge"
	"github.com/parsecv/parsecv/internal/ner"
	"github.com/parsecv/parsecv/internal/pipeline"
	"github.com/parsecv/parsecv/internal/rules"
	"github.com/parsecv/parsecv/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := pipeline.NewMetrics(registry)
	if err != nil {
		logger.Error("failed to register metrics", "error", err)
		os.Exit(1)
	}

	extractor := extract.NewExtractor(extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
		OCRWorkers:    cfg.Extract.OCRWorkers,
	}, logger)

	ruleExt := rules.NewExtractor(ner.NewProseRecognizer(), logger)

	var model llm.FieldExtractor
	if cfg.LLM.Disabled {
		logger.Info("model pass disabled, running rule-based extraction only")
	} else {
		model = openai.NewClient(openai.Config{
			BaseURL:   cfg.LLM.BaseURL,
			APIKey:    cfg.LLM.APIKey,
			Model:     cfg.LLM.Model,
			MaxTokens: cfg.LLM.MaxTokens,
			Timeout:   cfg.LLM.Timeout,
		}, logger)
	}

	merger := merge.NewMerger(merge.ParsePolicy(cfg.Merge.ContactPolicy))
	processor := pipeline.NewProcessor(logger, extractor, ruleExt, model, merger, metrics)

	app, err := server.New(processor, server.Options{
		Logger:      logger,
		Registry:    registry,
		BodyLimitMB: cfg.Server.BodyLimitMB,
	})
	if err != nil {
		logger.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	logger.Info("parsecvd listening", "addr", cfg.Server.HTTPAddr)
	go func() {
		if err := app.Listen(cfg.Server.HTTPAddr); err != nil {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
