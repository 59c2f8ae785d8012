// Package render turns a finished scan.Report into human-readable output.
// Renderers are pure over the report value; they never touch storage.
package render

import (
	"sort"

	"bucketlens.dev/bucketlens/internal/scan"
)

// permissionLabel names the combined probe outcome the way assessors expect
// to read it in a findings table.
func permissionLabel(p scan.PermissionResult) string {
	switch {
	case p.CanRead && p.CanWrite:
		return "Read/Write"
	case p.CanWrite:
		return "Write"
	case p.CanRead:
		return "Read"
	default:
		return "None"
	}
}

// sortBySizeDesc returns a copy of objects ordered largest first, the order
// both renderers list folder contents in.
func sortBySizeDesc(objects []scan.Object) []scan.Object {
	sorted := make([]scan.Object, len(objects))
	copy(sorted, objects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})
	return sorted
}
