package document

import (
	"html/template"
	"strings"
)

// Descriptor is the metadata and raw body of one discoverable content file.
// Segments holds the ancestor directory names in root-to-leaf order followed
// by the file's own name with the extension stripped; it is never empty and
// uniquely identifies the document's route.
type Descriptor struct {
	Segments []string `json:"segments"`
	Title    string   `json:"title"`
	Raw      []byte   `json:"-"`
}

// Route returns the document's address: its segments joined with "/" and a
// leading slash.
func (d Descriptor) Route() string {
	return Route(d.Segments)
}

// Rendered is the sanitized HTML produced from one document's raw body.
type Rendered struct {
	HTML template.HTML
}

// Route joins path segments into a route. Route and SplitRoute are inverses
// for any segment list free of embedded separators.
func Route(segments []string) string {
	return "/" + strings.Join(segments, "/")
}

// SplitRoute splits a route back into its segments. Empty components from
// leading, trailing, or doubled separators are dropped.
func SplitRoute(route string) []string {
	var segments []string
	for _, s := range strings.Split(route, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
