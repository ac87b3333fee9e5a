package opensearch

import "strings"

const DefaultIndexPrefix = "mongodb-"

// IndexNaming maps source collections to destination indices and back
type IndexNaming struct {
	Prefix string
}

func NewIndexNaming(prefix string) IndexNaming {
	return IndexNaming{Prefix: prefix}
}

func (n IndexNaming) IndexName(collectionName string) string {
	return n.Prefix + collectionName
}

func (n IndexNaming) CollectionName(index string) (string, bool) {
	if !strings.HasPrefix(index, n.Prefix) || len(index) == len(n.Prefix) {
		return "", false
	}
	return strings.TrimPrefix(index, n.Prefix), true
}
