package gateway

import "os"

// DefaultFestivalCandidates are probed in order when no festival calendar path is given.
var DefaultFestivalCandidates = []string{
	"Festivals.csv",
	"../Festivals.csv",
	"data/Festivals.csv",
}

// FileResolver locates the festival calendar on the local filesystem.
type FileResolver struct {
	candidates []string
	exists     func(path string) bool
}

// NewFileResolver creates a resolver probing candidates in order.
// A nil slice selects DefaultFestivalCandidates.
func NewFileResolver(candidates []string) *FileResolver {
	if candidates == nil {
		candidates = DefaultFestivalCandidates
	}
	return &FileResolver{candidates: candidates, exists: fileExists}
}

// Resolve returns the explicit path when it exists, otherwise the first existing
// candidate. An explicit path that does not exist is not replaced by a candidate.
func (r *FileResolver) Resolve(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, r.exists(explicit)
	}
	for _, c := range r.candidates {
		if r.exists(c) {
			return c, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
