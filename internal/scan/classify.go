package scan

import "strings"

// GroupByFolder partitions objects by their top-level path segment. A key
// with no separator forms a singleton group named after the whole key, the
// same top-level grouping `aws s3 ls` presents. Objects keep their encounter
// order within each group; group ordering is left to the renderers.
func GroupByFolder(objects []Object) map[string][]Object {
	groups := make(map[string][]Object)
	for _, obj := range objects {
		folder, _, _ := strings.Cut(obj.Key, "/")
		groups[folder] = append(groups[folder], obj)
	}
	return groups
}
