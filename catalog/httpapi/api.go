package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

const (
	paramTitle  = "title"
	paramName   = "name"
	paramPatron = "patron"
)

// API serves a catalog over HTTP.
type API struct {
	catalog *catalog.Catalog
	logger  catalog.Logger
	limiter *rate.Limiter
	entries EntryLister
}

// New creates an API for lib.
func New(lib *catalog.Catalog, options ...Option) (*API, error) {
	if lib == nil {
		return nil, ErrNilCatalog
	}

	a := &API{catalog: lib}

	for _, option := range options {
		if err := option(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Routes returns the router with all endpoints and middleware mounted.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	if a.limiter != nil {
		r.Use(a.rateLimit)
	}

	r.Route("/books", func(r chi.Router) {
		r.Get("/", a.listBooks)
		r.Post("/", a.addBook)
		r.Delete("/{"+paramTitle+"}", a.removeBook)
	})

	r.Route("/patrons", func(r chi.Router) {
		r.Post("/", a.addPatron)
		r.Delete("/{"+paramName+"}", a.removePatron)
		r.Get("/{"+paramName+"}/history", a.borrowingHistory)
	})

	r.Post("/borrowings", a.borrowBook)
	r.Post("/returns", a.returnBook)

	r.Route("/fines", func(r chi.Router) {
		r.Get("/", a.fineReport)
		r.Get("/{"+paramPatron+"}/{"+paramTitle+"}", a.calculateFine)
	})

	if a.entries != nil {
		r.Get("/notifications", a.listNotifications)
	}

	return r
}
