package main

import (
	"fmt"
	"log"

	"kagaz/internal/config"
	"kagaz/internal/domain"
	"kagaz/internal/engine"
	"kagaz/internal/gateway"
	"kagaz/internal/handler"
	"kagaz/internal/parser/sambanova"
	"kagaz/internal/port"
	"kagaz/internal/repository/postgres"
	"kagaz/internal/router"
	"kagaz/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	documentRepo := postgres.NewDocumentRepo(db)

	// Parser chain: remote model first when configured, local rule-based
	// engine always last so a prompt can never hard-fail.
	var (
		parsers []port.PromptParser
		names   []string
		sources []domain.UpdateSource
	)
	if cfg.Parser.APIKey != "" {
		parsers = append(parsers, sambanova.NewParser(&cfg.Parser))
		names = append(names, cfg.Parser.Provider)
		sources = append(sources, domain.SourceRemote)
	} else {
		log.Printf("no parser API key configured; running with local engine only")
	}
	parsers = append(parsers, engine.NewLocalParser())
	names = append(names, "local")
	sources = append(sources, domain.SourceLocal)

	dispatcher := gateway.NewDispatcher(parsers, names, sources)

	documentSvc := service.NewDocumentService(documentRepo, dispatcher)

	documentH := handler.NewDocumentHandler(documentSvc)
	parseH := handler.NewParseHandler()
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg.CORS.AllowedOrigins, documentH, parseH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
