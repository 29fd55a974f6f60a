package naming

import (
	"path/filepath"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortNatural orders paths by basename using numeric-aware collation, so
// "ep2" sorts before "ep10". The ordered rename workflow relies on this to
// assign stable indices; the raw directory listing order is platform-defined
// and unusable for numbering.
func SortNatural(paths []string) {
	collator := collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(paths, func(i, j int) bool {
		return collator.CompareString(filepath.Base(paths[i]), filepath.Base(paths[j])) < 0
	})
}
