// Package httpapi exposes a catalog.Catalog over HTTP with a chi router.
//
// Borrowing and returning always answer 200 or 409: a missing patron or book is a
// business failure reported in the body together with its reason, never a 404.
// Reports are served as JSON, or as plain text lines with ?format=text.
package httpapi
