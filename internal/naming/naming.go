package naming

import (
	"fmt"
	"strings"
)

// OrderedName produces the destination filename for position index in an
// ordered rename. In tv mode the result is S{season:02}E{index:02}{ext};
// otherwise {prefix}{index:04}{ext}. Values too wide for the padding simply
// widen, they are never truncated. The extension is used verbatim, leading
// dot and original case included.
func OrderedName(index, season int, prefix string, tv bool, ext string) string {
	if tv {
		return fmt.Sprintf("S%02dE%02d%s", season, index, ext)
	}
	return fmt.Sprintf("%s%04d%s", prefix, index, ext)
}

// SubstitutedName applies the prefix and suffix substitution rules to
// original. When original starts with prefix, the first occurrence of prefix
// is replaced with replacement; an empty prefix trivially matches.
// Independently, the first occurrence of suffix is removed when present.
// A result equal to original means no rename is wanted.
//
// The suffix check runs against original, not the running name: a
// replacement that happens to introduce the suffix does not trigger removal.
func SubstitutedName(original, prefix, replacement, suffix string) string {
	name := original
	if strings.HasPrefix(name, prefix) {
		name = strings.Replace(name, prefix, replacement, 1)
	}
	if suffix != "" && strings.Contains(original, suffix) {
		name = strings.Replace(name, suffix, "", 1)
	}
	return name
}
