package property_test

import (
	"reflect"
	"testing"

	"github.com/amonks/propdemo/alias"
	"github.com/amonks/propdemo/options"
	"github.com/amonks/propdemo/property"
)

func parseArgs(t *testing.T, args ...string) *options.Set {
	t.Helper()

	parser, err := options.NewParser(
		options.Accepts("c", "charset", "myapp.output-charset").WithRequiredArg(),
		options.Accepts("h", "help"),
		options.Accepts("t", "threads", "myapp.max-thread-pool-size").WithRequiredArg(),
	)
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	set, err := parser.Parse(args)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return set
}

func TestCommandLinePropertyNamesPerPolicy(t *testing.T) {
	set := parseArgs(t, "-c", "UTF-8", "--threads=4")

	cases := []struct {
		name string
		sel  alias.Selector
		want []string
	}{
		{name: "sorted-last", sel: alias.SortedLast, want: []string{"myapp.output-charset", "threads"}},
		{name: "longest", sel: alias.Longest, want: []string{"myapp.output-charset", "myapp.max-thread-pool-size"}},
		{name: "separator", sel: alias.Containing("."), want: []string{"myapp.output-charset", "myapp.max-thread-pool-size"}},
		{
			name: "all",
			sel:  alias.All,
			want: []string{"c", "charset", "myapp.output-charset", "t", "threads", "myapp.max-thread-pool-size"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := property.NewCommandLine(set, tc.sel)
			if got := source.PropertyNames(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCommandLinePropertyResolvesEveryAlias(t *testing.T) {
	source := property.NewCommandLine(parseArgs(t, "-c", "UTF-8", "--threads=4"), alias.Longest)

	for _, name := range []string{"c", "charset", "myapp.output-charset"} {
		value, ok := source.Property(name)
		if !ok || value != "UTF-8" {
			t.Fatalf("Property(%q) = %q, %v", name, value, ok)
		}
	}
	if _, ok := source.Property("help"); ok {
		t.Fatal("expected unbound option to be absent")
	}
	if _, ok := source.Property("output-charset"); ok {
		t.Fatal("expected undeclared name to be absent")
	}
}

func TestCommandLineFlagAndRepeatedValues(t *testing.T) {
	source := property.NewCommandLine(parseArgs(t, "--help", "-t", "1", "-t", "2"), alias.All)

	value, ok := source.Property("h")
	if !ok || value != "" {
		t.Fatalf("expected flag to resolve to empty string, got %q, %v", value, ok)
	}
	value, ok = source.Property("threads")
	if !ok || value != "1,2" {
		t.Fatalf("expected comma-joined values, got %q, %v", value, ok)
	}
}

func TestCommandLineNonOptionArgs(t *testing.T) {
	source := property.NewCommandLine(parseArgs(t, "a", "--unknown", "-c", "x", "b"), alias.Longest)

	value, ok := source.Property(property.NonOptionArgsName)
	if !ok || value != "a,--unknown,b" {
		t.Fatalf("expected non-option args, got %q, %v", value, ok)
	}
	if got := source.NonOptionArgs(); !reflect.DeepEqual(got, []string{"a", "--unknown", "b"}) {
		t.Fatalf("unexpected non-option args %v", got)
	}

	source = property.NewCommandLine(parseArgs(t, "-c", "x"), alias.Longest)
	if _, ok := source.Property(property.NonOptionArgsName); ok {
		t.Fatal("expected no non-option args property")
	}
}

func TestCommandLineName(t *testing.T) {
	source := property.NewCommandLine(parseArgs(t), alias.All)

	if source.Name() != "commandLineArgs" {
		t.Fatalf("unexpected name %q", source.Name())
	}
	if got := source.PropertyNames(); len(got) != 0 {
		t.Fatalf("expected no property names, got %v", got)
	}
}
