package builder

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvOr returns the trimmed env value or def when empty.
func EnvOr(key, def string) string {
	v := strings.TrimSpace(strings.Trim(os.Getenv(key), `"`))
	if v == "" {
		return def
	}
	return v
}

// EnvIntOr returns the parsed int env value or def on empty/parse failure.
func EnvIntOr(key string, def int) int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvIntsOr returns a comma-separated int list env value or def on
// empty/parse failure. Blank entries are skipped.
func EnvIntsOr(key string, def []int) []int {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return def
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// EnvBoolOr returns the parsed bool env value or def on empty/parse failure.
func EnvBoolOr(key string, def bool) bool {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// EnvDurOr returns the parsed duration env value or def on empty/parse failure.
func EnvDurOr(key string, def time.Duration) time.Duration {
	v := EnvOr(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
