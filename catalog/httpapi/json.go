package httpapi

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
	contentTypeText   = "text/plain; charset=utf-8"
	queryFormat       = "format"
	formatText        = "text"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	_ = jsonAPI.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func readJSON(r *http.Request, target any) error {
	return jsonAPI.NewDecoder(r.Body).Decode(target)
}

// writeReport answers with the report as JSON, or as text lines when ?format=text is given.
func writeReport(w http.ResponseWriter, r *http.Request, report catalog.Report) {
	if r.URL.Query().Get(queryFormat) == formatText {
		w.Header().Set(headerContentType, contentTypeText)
		w.WriteHeader(http.StatusOK)
		_ = catalog.WriteReport(w, report)

		return
	}

	writeJSON(w, http.StatusOK, report)
}

// pathParam returns the decoded URL parameter.
// chi matches against RawPath when it is set, so only then is the segment still escaped.
func pathParam(r *http.Request, key string) string {
	param := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return param
	}

	value, err := url.PathUnescape(param)
	if err != nil {
		return param
	}

	return value
}
