package interfaces

import (
	"fmt"
	"sort"
	"strings"
)

// DeletionBlockedError reports rows that still reference the resource being deleted.
type DeletionBlockedError struct {
	Resource   string
	References map[string]int64
}

func (e *DeletionBlockedError) Error() string {
	if len(e.References) == 0 {
		return "deletion blocked"
	}
	tables := make([]string, 0, len(e.References))
	for table := range e.References {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	parts := make([]string, 0, len(tables))
	for _, table := range tables {
		parts = append(parts, fmt.Sprintf("%d %s", e.References[table], table))
	}
	return fmt.Sprintf("deletion blocked: %s is referenced by %s", e.Resource, strings.Join(parts, ", "))
}
