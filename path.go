package vladify

import (
	"fmt"
	"strconv"
)

// ExtendPath appends one navigation step to a dotted/bracketed path string.
// Integer keys render as a bracketed index ("a[2]"), everything else as a
// dotted field ("a.b"); at the root the bare key is returned unchanged.
func ExtendPath(key any, previous string) string {
	switch k := key.(type) {
	case int:
		return previous + "[" + strconv.Itoa(k) + "]"
	case int64:
		return previous + "[" + strconv.FormatInt(k, 10) + "]"
	case string:
		if previous == "" {
			return k
		}
		return previous + "." + k
	default:
		s := fmt.Sprint(key)
		if previous == "" {
			return s
		}
		return previous + "." + s
	}
}
