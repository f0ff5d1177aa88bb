// Package snippets ships the built-in sample snippet library and merges in
// user snippets from an optional YAML file in the config dir.
package snippets

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Built-in samples, each exercising a different detector rule.
var builtin = map[string]string{
	"print_spam.py": `def greet(name):
    print("Hello", name)
    print("Welcome!")
    return True
`,
	"flaky_try_except.py": `def load_data(path):
    try:
        data = open(path).read()
    except:
        return None
    return data
`,
	"mixed_issues.py": `# TODO: replace with real implementation
def compute(x, y):
    print("computing...")
    try:
        return x / y
    except:
        return 0
`,
	"cleanish.py": `import logging

def add(a, b):
    logging.info("Adding numbers")
    return a + b
`,
}

// Library is a named snippet collection.
type Library struct {
	entries map[string]string
}

// Builtin returns a library containing only the built-in samples.
func Builtin() *Library {
	entries := make(map[string]string, len(builtin))
	for name, code := range builtin {
		entries[name] = code
	}
	return &Library{entries: entries}
}

// Load returns the built-in library overlaid with user snippets from a YAML
// file (a flat name → source mapping). A missing file is not an error; user
// entries override built-ins with the same name.
func Load(path string) (*Library, error) {
	lib := Builtin()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, fmt.Errorf("snippets: reading %s: %w", path, err)
	}

	var user map[string]string
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("snippets: parsing %s: %w", path, err)
	}

	for name, code := range user {
		lib.entries[name] = code
	}
	return lib, nil
}

// Names returns the snippet names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.entries))
	for name := range l.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a snippet by name.
func (l *Library) Get(name string) (string, bool) {
	code, ok := l.entries[name]
	return code, ok
}
