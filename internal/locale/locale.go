// Package locale provides the key->string lookup table used for on-screen
// text. A missing key is not fatal: lookups fall back to the key itself, and
// the full table is validated once at startup so genuine build mistakes
// surface as configuration errors instead of runtime panics.
package locale

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed strings/en.yaml
var defaultStringsYAML []byte

// requiredKeys are the keys the platform and games render. Validate reports
// any of these missing from the loaded table.
var requiredKeys = []string{
	"common.game_over",
	"common.paused",
	"common.resume_hint",
	"common.restart_hint",
	"common.score",
	"common.high_score",
	"runner.title",
	"runner.start_hint",
	"runner.crashed",
	"runner.speed",
	"snake.title",
	"snake.speed",
}

var (
	mu    sync.RWMutex
	table = map[string]string{}
)

func init() {
	// The embedded table ships with the binary; a parse failure here is a
	// build defect and leaves the fallback-to-key behavior in place.
	t, err := parse(defaultStringsYAML)
	if err == nil {
		table = t
	}
}

// parse flattens nested YAML maps into dot-separated keys.
func parse(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("locale: cannot parse strings table: %w", err)
	}
	out := make(map[string]string)
	flatten("", raw, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Load replaces the string table with the contents of data.
func Load(data []byte) error {
	t, err := parse(data)
	if err != nil {
		return err
	}
	mu.Lock()
	table = t
	mu.Unlock()
	return nil
}

// T returns the string for key, or the key itself when absent.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Tf returns the formatted string for key.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// Validate reports all required keys missing from the current table.
// Intended to run once at startup.
func Validate() error {
	mu.RLock()
	defer mu.RUnlock()

	var missing []string
	for _, k := range requiredKeys {
		if _, ok := table[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("locale: missing required strings: %s", strings.Join(missing, ", "))
	}
	return nil
}
