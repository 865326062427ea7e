package property

import (
	"strings"

	"github.com/samber/lo"
)

// EnvironSourceName is the name of the operating system environment source.
const EnvironSourceName = "systemEnvironment"

// Environ resolves properties from environment variables. A property such as
// "myapp.output-charset" also matches MYAPP_OUTPUT_CHARSET.
type Environ struct {
	values map[string]string
}

// NewEnviron parses KEY=VALUE pairs as returned by os.Environ.
// Later duplicates win; entries without '=' are ignored.
func NewEnviron(environ []string) *Environ {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return &Environ{values: values}
}

func (e *Environ) Name() string {
	return EnvironSourceName
}

func (e *Environ) Property(name string) (string, bool) {
	for _, candidate := range environCandidates(name) {
		if value, ok := e.values[candidate]; ok {
			return value, true
		}
	}
	return "", false
}

// environCandidates lists the variable names tried for a property, most
// specific first.
func environCandidates(name string) []string {
	dots := strings.ReplaceAll(name, ".", "_")
	both := strings.ReplaceAll(dots, "-", "_")
	candidates := []string{name, dots, both}
	candidates = append(candidates, strings.ToUpper(name), strings.ToUpper(dots), strings.ToUpper(both))
	return lo.Uniq(candidates)
}
