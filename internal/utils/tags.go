package utils

import (
	"strings"
)

// SplitTags turns "道路, 搶修,,物資" into ["道路", "搶修", "物資"].
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		out = append(out, strings.Clone(tag))
	}
	return out
}

// CleanTags applies the same rules to tags that arrive already split.
func CleanTags(tags []string) []string {
	return SplitTags(strings.Join(tags, ","))
}
