package ordering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
)

// Summarize renders an order's items as a human readable list, keyed through
// the lookup for current item names. Items removed from the menu after the
// order was placed fall back to "Item <id>".
func Summarize(items map[int64]int64, lookup func(int64) (storage.MenuItem, bool)) string {
	if len(items) == 0 {
		return "No items"
	}

	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		name := fmt.Sprintf("Item %d", id)
		if lookup != nil {
			if item, ok := lookup(id); ok {
				name = item.Name
			}
		}
		parts = append(parts, fmt.Sprintf("%s x%d", name, items[id]))
	}
	return strings.Join(parts, ", ")
}
