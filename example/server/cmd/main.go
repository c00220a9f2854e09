package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/catalog/httpapi"
	"github.com/AntonStoeckl/library-catalog-go/catalog/oteladapters"
	"github.com/AntonStoeckl/library-catalog-go/example/shared/shell/config"
)

const instrumentationName = "library-catalog-server"

func main() {
	var (
		observability = flag.Bool("observability-enabled", false, "Export traces and metrics via OTLP (CATALOG_OTLP_ENDPOINT)")
		seed          = flag.Bool("seed", true, "Start with the demo collection of three books and two patrons")
	)

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := oteladapters.NewSlogBridgeLogger(instrumentationName)
	catalogOptions := []catalog.Option{catalog.WithContextualLogger(logger)}
	apiOptions := []httpapi.Option{httpapi.WithLogger(logger)}

	if *observability {
		endpoint := config.OTLPEndpoint()
		if endpoint == "" {
			log.Fatalf("%s must be set when observability is enabled", config.EnvOTLPEndpoint)
		}

		providers, err := config.NewObservabilityProviders(ctx, instrumentationName, "dev", endpoint)
		if err != nil {
			log.Fatalf("Failed to create observability providers: %v", err)
		}
		defer func() {
			if shutdownErr := providers.Shutdown(); shutdownErr != nil {
				log.Printf("Error during observability shutdown: %v", shutdownErr)
			}
		}()

		_, catalogOptions = config.ObservabilityOptions(instrumentationName)
	}

	if dsn := config.JournalDSN(); dsn != "" {
		adapterType, err := config.AdapterType()
		if err != nil {
			log.Fatalf("Invalid adapter type: %v", err)
		}

		j, closeJournal, err := config.OpenJournal(ctx, adapterType, dsn, logger)
		if err != nil {
			log.Fatalf("Failed to open notification journal: %v", err)
		}
		defer closeJournal()

		catalogOptions = append(catalogOptions, catalog.WithNotifier(j))
		apiOptions = append(apiOptions, httpapi.WithEntryLister(j))
	}

	requestsPerSecond, burst, err := config.RateLimit()
	if err != nil {
		log.Fatalf("Invalid rate limit: %v", err)
	}
	apiOptions = append(apiOptions, httpapi.WithRateLimit(requestsPerSecond, burst))

	library, err := catalog.New(catalogOptions...)
	if err != nil {
		log.Fatalf("Failed to create catalog: %v", err)
	}

	if *seed {
		library.AddBook(catalog.NewBook("The Great Gatsby", "F. Scott Fitzgerald", "Classic"))
		library.AddBook(catalog.NewBook("1984", "George Orwell", "Dystopian"))
		library.AddBook(catalog.NewBook("To Kill a Mockingbird", "Harper Lee", "Classic"))
		library.AddPatron(catalog.NewPatron("John Doe", "john.doe@example.com"))
		library.AddPatron(catalog.NewPatron("Jane Smith", "jane.smith@example.com"))
	}

	api, err := httpapi.New(library, apiOptions...)
	if err != nil {
		log.Fatalf("Failed to create HTTP API: %v", err)
	}

	server := &http.Server{
		Addr:              config.HTTPAddress(),
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Library catalog listening on %s", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errChan <- serveErr
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down...")
	case serveErr := <-errChan:
		log.Printf("Server failed: %v", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Printf("Error during shutdown: %v", shutdownErr)
	}
}
