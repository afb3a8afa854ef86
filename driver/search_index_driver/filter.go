package search_index_driver

import (
	"fmt"
	"strings"
)

// escapeMeilisearchValue escapes special characters in Meilisearch filter values.
func escapeMeilisearchValue(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	return value
}

// BuildFeedFilter restricts a search to the given feed ids.
func BuildFeedFilter(feedIDs []string) string {
	if len(feedIDs) == 0 {
		return ""
	}

	quoted := make([]string, 0, len(feedIDs))
	for _, id := range feedIDs {
		quoted = append(quoted, fmt.Sprintf("\"%s\"", escapeMeilisearchValue(id)))
	}

	return fmt.Sprintf("feed_id IN [%s]", strings.Join(quoted, ", "))
}
