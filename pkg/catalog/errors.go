package catalog

import "errors"

// Sentinel errors for catalog load failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrEmptyCatalog indicates the catalog contains no questions.
	ErrEmptyCatalog = errors.New("catalog: empty catalog")

	// ErrMalformedCatalog indicates the catalog data is syntactically or
	// semantically invalid (bad JSON, duplicate ids, unknown pillar, etc.).
	ErrMalformedCatalog = errors.New("catalog: malformed catalog")
)
