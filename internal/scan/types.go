package scan

import (
	"sort"
	"time"
)

// Object is a single stored object as seen by an unauthenticated listing.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Inventory is the complete object listing of a bucket plus totals derived
// from it. Totals are always recomputed from Objects, never carried forward.
type Inventory struct {
	Objects        []Object `json:"objects"`
	TotalCount     int      `json:"total_count"`
	TotalSizeBytes int64    `json:"total_size_bytes"`
}

// NewInventory builds an Inventory with totals derived from objects.
func NewInventory(objects []Object) Inventory {
	inv := Inventory{
		Objects:    objects,
		TotalCount: len(objects),
	}
	for _, obj := range objects {
		inv.TotalSizeBytes += obj.Size
	}
	return inv
}

// PermissionResult records the outcome of the read and write probes for one
// top-level folder. The two probes are independent: CanWrite does not imply
// the read probe succeeded.
type PermissionResult struct {
	Folder   string `json:"folder"`
	CanRead  bool   `json:"can_read"`
	CanWrite bool   `json:"can_write"`
}

// Report is the terminal artifact of a scan. It is fully built before being
// handed to any renderer and is never mutated afterwards; the key sets of
// Folders and Permissions always match the folders derived from the
// inventory.
type Report struct {
	Bucket      string                      `json:"bucket"`
	Region      string                      `json:"region"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Inventory   Inventory                   `json:"inventory"`
	Folders     map[string][]Object         `json:"folders"`
	Permissions map[string]PermissionResult `json:"permissions"`
}

// FolderNames returns the report's folders in lexicographic order. Renderers
// use this for stable output; the maps themselves stay unordered.
func (r *Report) FolderNames() []string {
	names := make([]string, 0, len(r.Folders))
	for name := range r.Folders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
