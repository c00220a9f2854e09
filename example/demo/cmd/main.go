package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
	"github.com/AntonStoeckl/library-catalog-go/example/shared/shell/config"
)

const instrumentationName = "library-catalog-demo"

// shiftedClock is the system clock moved forward by a settable offset.
type shiftedClock struct {
	mu    sync.Mutex
	shift time.Duration
}

func (c *shiftedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return time.Now().Add(c.shift)
}

func (c *shiftedClock) skipDays(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shift += time.Duration(days) * 24 * time.Hour
}

func main() {
	var (
		daysLater     = flag.Int("days-later", 20, "Days that pass between borrowing and the fine calculation")
		observability = flag.Bool("observability-enabled", false, "Export traces and metrics via OTLP (CATALOG_OTLP_ENDPOINT)")
		useJournal    = flag.Bool("journal", false, "Record notifications in PostgreSQL (CATALOG_JOURNAL_DSN)")
	)

	flag.Parse()

	ctx := context.Background()
	clock := &shiftedClock{}

	options := []catalog.Option{
		catalog.WithClock(clock),
		catalog.WithNotifier(catalog.NewWriterNotifier(os.Stdout)),
	}

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

		_, observabilityOptions := config.ObservabilityOptions(instrumentationName)
		options = append(options, observabilityOptions...)
	}

	if *useJournal {
		adapterType, err := config.AdapterType()
		if err != nil {
			log.Fatalf("Invalid adapter type: %v", err)
		}

		j, closeJournal, err := config.OpenJournal(ctx, adapterType, config.JournalDSN(), nil)
		if err != nil {
			log.Fatalf("Failed to open notification journal: %v", err)
		}
		defer closeJournal()

		options = append(options, catalog.WithNotifier(j))
	}

	library, err := catalog.New(options...)
	if err != nil {
		log.Fatalf("Failed to create catalog: %v", err)
	}

	library.AddBook(catalog.NewBook("The Great Gatsby", "F. Scott Fitzgerald", "Classic"))
	library.AddBook(catalog.NewBook("1984", "George Orwell", "Dystopian"))
	library.AddBook(catalog.NewBook("To Kill a Mockingbird", "Harper Lee", "Classic"))

	library.AddPatron(catalog.NewPatron("John Doe", "john.doe@example.com"))
	library.AddPatron(catalog.NewPatron("Jane Smith", "jane.smith@example.com"))

	library.BorrowBook(ctx, "John Doe", "The Great Gatsby")
	library.BorrowBook(ctx, "Jane Smith", "1984")

	clock.skipDays(*daysLater)

	printReport(library.AvailabilityReport())
	if history, found := library.BorrowingHistoryReport("John Doe"); found {
		printReport(history)
	}
	printReport(library.FineReport())

	library.ReturnBook(ctx, "John Doe", "The Great Gatsby")
	log.Printf("Fine for Jane Smith and 1984 after %d days: $%.2f",
		*daysLater, library.CalculateFine("Jane Smith", "1984"))
}

func printReport(report catalog.Report) {
	if err := catalog.WriteReport(os.Stdout, report); err != nil {
		log.Printf("Failed to write report: %v", err)
	}
}
