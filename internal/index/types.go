package index

// FileIndex is the structural summary of one source file. Path is relative
// to the indexed root and unique within a CodebaseIndex; name lists carry no
// duplicates.
type FileIndex struct {
	Path           string              `json:"path"`
	Language       string              `json:"language"`
	Functions      []string            `json:"functions"`
	Classes        []string            `json:"classes"`
	Imports        []string            `json:"imports"`
	Decorators     []string            `json:"decorators"`
	Docstring      string              `json:"docstring,omitempty"`
	ClassMethods   map[string][]string `json:"class_methods,omitempty"`
	AsyncFunctions []string            `json:"async_functions,omitempty"`
	LastModified   string              `json:"last_modified"`
	LinesOfCode    int                 `json:"lines_of_code"`
}

// CodebaseIndex maps relative path to FileIndex. It is the primary persisted
// artifact, created empty or loaded from a prior run and mutated by merging
// re-parsed entries.
type CodebaseIndex map[string]*FileIndex

// Statistics summarizes a CodebaseIndex.
type Statistics struct {
	TotalFiles     int `json:"total_files"`
	TotalLOC       int `json:"total_loc"`
	TotalFunctions int `json:"total_functions"`
	TotalClasses   int `json:"total_classes"`
}

// Stats computes the aggregate statistics for the index.
func (ci CodebaseIndex) Stats() Statistics {
	stats := Statistics{TotalFiles: len(ci)}
	for _, fi := range ci {
		stats.TotalLOC += fi.LinesOfCode
		stats.TotalFunctions += len(fi.Functions)
		stats.TotalClasses += len(fi.Classes)
	}
	return stats
}
