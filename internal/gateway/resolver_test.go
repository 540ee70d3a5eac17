package gateway

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		existing map[string]bool
		explicit string
		wantPath string
		wantOK   bool
	}{
		{
			name:     "explicit path exists",
			existing: map[string]bool{"custom.csv": true, "Festivals.csv": true},
			explicit: "custom.csv",
			wantPath: "custom.csv",
			wantOK:   true,
		},
		{
			name:     "explicit path missing does not fall back",
			existing: map[string]bool{"Festivals.csv": true},
			explicit: "custom.csv",
			wantPath: "custom.csv",
			wantOK:   false,
		},
		{
			name:     "first existing candidate wins",
			existing: map[string]bool{"../Festivals.csv": true, "data/Festivals.csv": true},
			wantPath: "../Festivals.csv",
			wantOK:   true,
		},
		{
			name:     "nothing found",
			existing: map[string]bool{},
			wantPath: "",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFileResolver(nil)
			r.exists = func(p string) bool { return tt.existing[p] }

			path, ok := r.Resolve(tt.explicit)

			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestFileResolver_ResolveOnDisk(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "Festivals.csv")
	require.NoError(t, os.WriteFile(present, []byte("Date,Festival_Name\n"), 0o600))

	r := NewFileResolver([]string{filepath.Join(dir, "missing.csv"), dir, present})

	path, ok := r.Resolve("")
	assert.True(t, ok)
	assert.Equal(t, present, path)
}
