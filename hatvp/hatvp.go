// Package hatvp fetches the public declaration index and declaration
// documents from the Haute Autorité pour la transparence de la vie publique
// open-data service. It is the engine's external collaborator: it only
// moves bytes, all interpretation happens in the parent package.
package hatvp

import (
	"strings"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/date"
)

const (
	// DefaultIndexURL lists every published declaration.
	DefaultIndexURL = "https://www.hatvp.fr/livraison/opendata/liste.csv"
	// DefaultDocumentBase is where declaration documents live; the index
	// names files relative to it.
	DefaultDocumentBase = "https://www.hatvp.fr/livraison/dossiers/"
)

// IndexEntry is one row of the published declaration index.
type IndexEntry struct {
	GivenName  string
	FamilyName string
	Category   transparence.Category
	FilingDate date.Date
	// File is the document file name relative to the document base, already
	// carrying its extension.
	File string
	// URL is the absolute document URL when the index provides one; derived
	// from File otherwise.
	URL string
}

// DocumentURL returns the absolute URL of the entry's document under base.
func (e IndexEntry) DocumentURL(base string) string {
	if strings.HasPrefix(e.URL, "http") {
		return e.URL
	}
	if e.File == "" {
		return ""
	}
	file := e.File
	if !strings.HasSuffix(file, ".xml") {
		file += ".xml"
	}
	return base + file
}
