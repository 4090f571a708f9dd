package core

import "github.com/valter-silva-au/tasklist/pkg/models"

// SentinelCount is the number of reserved entries at the head of a tag
// catalog: the "all" sentinel at index 0 and the "without" sentinel at
// index 1.
const SentinelCount = 2

// CollectTags gathers the distinct tags across all tasks in first-use
// order. pick selects which tag list of a task to read.
func CollectTags(tasks []models.Task, pick func(models.Task) []string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, task := range tasks {
		for _, tag := range pick(task) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// WithSentinels builds a catalog by prefixing the tag list with the "all"
// and "without" sentinel labels.
func WithSentinels(all, without string, tags []string) []string {
	catalog := make([]string, 0, SentinelCount+len(tags))
	catalog = append(catalog, all, without)
	return append(catalog, tags...)
}

// StripSentinels returns a copy of the catalog without its two leading
// sentinel entries. Catalogs shorter than the sentinel prefix yield an
// empty list.
func StripSentinels(catalog []string) []string {
	if len(catalog) <= SentinelCount {
		return nil
	}
	tags := make([]string, len(catalog)-SentinelCount)
	copy(tags, catalog[SentinelCount:])
	return tags
}
