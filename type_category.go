package transparence

import "strings"

// Category identifies a declaration document type as published by the
// registry. Initial filings and amended refilings are distinct categories of
// the same document family.
type Category string

const (
	// PatrimonyInitial is an initial asset declaration.
	PatrimonyInitial Category = "DSP"
	// PatrimonyAmended is an amended asset declaration.
	PatrimonyAmended Category = "DSPM"
	// InterestsInitial is an initial declaration of interests and activities.
	InterestsInitial Category = "DI"
	// InterestsAmended is an amended declaration of interests and activities.
	InterestsAmended Category = "DIM"
)

// CategoryGroup is the document family a category belongs to. Consolidation
// keeps the most recent document per group, so an amended filing supersedes
// the initial one it revises.
type CategoryGroup string

const (
	GroupPatrimony CategoryGroup = "patrimony"
	GroupInterests CategoryGroup = "interests"
)

// ParseCategory recognizes a category code, tolerating case and surrounding
// whitespace. Unknown codes report ok=false.
func ParseCategory(s string) (c Category, ok bool) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case PatrimonyInitial:
		return PatrimonyInitial, true
	case PatrimonyAmended:
		return PatrimonyAmended, true
	case InterestsInitial:
		return InterestsInitial, true
	case InterestsAmended:
		return InterestsAmended, true
	}
	return "", false
}

// Group returns the document family, or "" for an unknown category.
func (c Category) Group() CategoryGroup {
	switch c {
	case PatrimonyInitial, PatrimonyAmended:
		return GroupPatrimony
	case InterestsInitial, InterestsAmended:
		return GroupInterests
	}
	return ""
}

// Amended reports whether the category is an amended refiling.
func (c Category) Amended() bool {
	return c == PatrimonyAmended || c == InterestsAmended
}
