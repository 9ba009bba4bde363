package csvframe

import (
	"fmt"
	"strconv"
)

// columnNames turns a header record into unique column names. Empty cells
// become "Unnamed: <index>"; repeats get ".1", ".2", ... suffixes, skipping
// any suffix already taken.
func columnNames(header []string) []string {
	names := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		n := counts[name]
		for n > 0 {
			counts[name] = n + 1
			name = name + "." + strconv.Itoa(n)
			n = counts[name]
		}
		names[i] = name
		counts[name] = n + 1
	}
	return names
}
