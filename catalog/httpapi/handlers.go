package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

const (
	queryLimit          = "limit"
	defaultEntriesLimit = 50
	maxEntriesLimit     = 500
	timeLayout          = "2006-01-02T15:04:05.000000Z07:00"

	logMsgReadingJournalFailed = "reading notification journal failed"
)

type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

type bookResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Available bool   `json:"available"`
}

type patronRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

type patronResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactInfo   string `json:"contact_info"`
	BorrowedBooks int    `json:"borrowed_books"`
}

type borrowingRequest struct {
	PatronName string `json:"patron_name"`
	BookTitle  string `json:"book_title"`
}

type borrowingResponse struct {
	Outcome          string `json:"outcome"`
	NotificationType string `json:"notification_type"`
	Message          string `json:"message"`
	FailureReason    string `json:"failure_reason,omitempty"`
}

type fineResponse struct {
	PatronName string             `json:"patron_name"`
	BookTitle  string             `json:"book_title"`
	Amount     catalog.FineAmount `json:"amount"`
}

type notificationResponse struct {
	ID               string `json:"id"`
	NotificationType string `json:"notification_type"`
	OccurredAt       string `json:"occurred_at"`
	Failure          bool   `json:"failure"`
	Message          string `json:"message"`
}

func toBookResponse(book *catalog.Book) bookResponse {
	return bookResponse{
		ID:        book.ID.String(),
		Title:     book.Title,
		Author:    book.Author,
		Genre:     book.Genre,
		Available: book.IsAvailable(),
	}
}

func (a *API) listBooks(w http.ResponseWriter, r *http.Request) {
	writeReport(w, r, a.catalog.AvailabilityReport())
}

func (a *API) addBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	book := catalog.NewBook(req.Title, req.Author, req.Genre)
	a.catalog.AddBook(book)

	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

func (a *API) removeBook(w http.ResponseWriter, r *http.Request) {
	book, found := a.catalog.FindBookByTitle(pathParam(r, paramTitle))
	if !found {
		writeError(w, http.StatusNotFound, catalog.FailureReasonBookNotFound)
		return
	}

	a.catalog.RemoveBook(book)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) addPatron(w http.ResponseWriter, r *http.Request) {
	var req patronRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	patron := catalog.NewPatron(req.Name, req.ContactInfo)
	a.catalog.AddPatron(patron)

	writeJSON(w, http.StatusCreated, patronResponse{
		ID:          patron.ID.String(),
		Name:        patron.Name,
		ContactInfo: patron.ContactInfo,
	})
}

func (a *API) removePatron(w http.ResponseWriter, r *http.Request) {
	patron, found := a.catalog.FindPatronByName(pathParam(r, paramName))
	if !found {
		writeError(w, http.StatusNotFound, catalog.FailureReasonPatronNotFound)
		return
	}

	a.catalog.RemovePatron(patron)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) borrowingHistory(w http.ResponseWriter, r *http.Request) {
	report, found := a.catalog.BorrowingHistoryReport(pathParam(r, paramName))
	if !found {
		writeError(w, http.StatusNotFound, catalog.FailureReasonPatronNotFound)
		return
	}

	writeReport(w, r, report)
}

func (a *API) borrowBook(w http.ResponseWriter, r *http.Request) {
	var req borrowingRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeResult(w, a.catalog.BorrowBook(r.Context(), req.PatronName, req.BookTitle))
}

func (a *API) returnBook(w http.ResponseWriter, r *http.Request) {
	var req borrowingRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeResult(w, a.catalog.ReturnBook(r.Context(), req.PatronName, req.BookTitle))
}

func writeResult(w http.ResponseWriter, result catalog.Result) {
	status := http.StatusOK
	if !result.Succeeded() {
		status = http.StatusConflict
	}

	writeJSON(w, status, borrowingResponse{
		Outcome:          result.Outcome,
		NotificationType: result.Notification.NotificationType(),
		Message:          result.Notification.Message(),
		FailureReason:    result.FailureReason(),
	})
}

func (a *API) fineReport(w http.ResponseWriter, r *http.Request) {
	writeReport(w, r, a.catalog.FineReport())
}

func (a *API) calculateFine(w http.ResponseWriter, r *http.Request) {
	patronName := pathParam(r, paramPatron)
	bookTitle := pathParam(r, paramTitle)

	writeJSON(w, http.StatusOK, fineResponse{
		PatronName: patronName,
		BookTitle:  bookTitle,
		Amount:     a.catalog.CalculateFine(patronName, bookTitle),
	})
}

func (a *API) listNotifications(w http.ResponseWriter, r *http.Request) {
	limit := defaultEntriesLimit

	if raw := r.URL.Query().Get(queryLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxEntriesLimit {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxEntriesLimit))
			return
		}

		limit = parsed
	}

	entries, err := a.entries.Entries(r.Context(), limit)
	if err != nil {
		if a.logger != nil {
			a.logger.Error(logMsgReadingJournalFailed, logAttrError, err.Error())
		}

		writeError(w, http.StatusInternalServerError, "reading notifications failed")

		return
	}

	response := make([]notificationResponse, 0, len(entries))
	for _, entry := range entries {
		item := notificationResponse{
			ID:               entry.ID.String(),
			NotificationType: entry.NotificationType,
			OccurredAt:       entry.OccurredAt.UTC().Format(timeLayout),
			Failure:          entry.Failure,
		}

		if notification, decodeErr := entry.Notification(); decodeErr == nil {
			item.Message = notification.Message()
		}

		response = append(response, item)
	}

	writeJSON(w, http.StatusOK, response)
}
