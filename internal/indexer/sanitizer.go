package indexer

import (
	"strings"

	"github.com/openshift-assisted/assisted-mongodb-sync/internal/types"
	"github.com/openshift-assisted/assisted-mongodb-sync/pkg/docpath"
)

// ExcludedFields holds entries such as "users.profile.ssn": a collection name
// followed by the path stripped from its documents.
type ExcludedFields []string

func ParseExcludedFields(attributes []string) ExcludedFields {
	excluded := ExcludedFields{}
	for _, attribute := range attributes {
		if attribute = strings.TrimSpace(attribute); attribute != "" {
			excluded = append(excluded, attribute)
		}
	}
	return excluded
}

// Paths returns the paths excluded for collectionName. Collection names may
// contain dots (fs.files), so entries are matched by prefix rather than split.
func (e ExcludedFields) Paths(collectionName string) []string {
	if collectionName == "" {
		return nil
	}
	prefix := collectionName + "."
	paths := []string{}
	for _, entry := range e {
		if path, found := strings.CutPrefix(entry, prefix); found && path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

type Sanitizer struct {
	excluded ExcludedFields
}

func NewSanitizer(attributes []string) *Sanitizer {
	return &Sanitizer{
		excluded: ParseExcludedFields(attributes),
	}
}

// Sanitize returns the documents without the excluded paths of collectionName.
// A non-nil attributes list replaces the configured exclusions for this call.
// Input documents are never modified.
func (s *Sanitizer) Sanitize(collectionName string, documents []types.Document, attributes []string) []types.Document {
	excluded := s.excluded
	if attributes != nil {
		excluded = ParseExcludedFields(attributes)
	}
	paths := excluded.Paths(collectionName)
	if len(paths) == 0 {
		return documents
	}
	sanitized := make([]types.Document, len(documents))
	for i, document := range documents {
		sanitized[i] = docpath.Delete(document, paths)
	}
	return sanitized
}
