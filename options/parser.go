package options

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/amonks/propdemo/alias"
)

// noValue is the pflag NoOptDefVal for options used without a value.
// pflag treats an empty NoOptDefVal as "value required", so it must be non-empty.
const noValue = "\x00"

// passthroughPrefix marks unrecognized option tokens while pflag parses.
const passthroughPrefix = "\x00passthrough:"

// Parser parses argument vectors against a fixed set of option declarations.
// A Parser is immutable and may be used from several goroutines.
type Parser struct {
	specs []Spec
	// index maps every alias to its spec.
	index map[string]int
	// primary is the pflag name of each spec.
	primary []string
	// shorthand is the one-byte alias of each spec, if any.
	shorthand []string
}

// NewParser validates the declarations and returns a parser for them.
func NewParser(specs ...Spec) (*Parser, error) {
	p := &Parser{
		specs:     make([]Spec, 0, len(specs)),
		index:     make(map[string]int),
		primary:   make([]string, 0, len(specs)),
		shorthand: make([]string, 0, len(specs)),
	}

	for i, spec := range specs {
		if len(spec.Aliases) == 0 {
			return nil, fmt.Errorf("declare option %d: %w", i, ErrEmptyGroup)
		}

		var short []string
		for _, name := range spec.Aliases {
			if err := validateAlias(name); err != nil {
				return nil, fmt.Errorf("declare option %v: %w", spec.Aliases, err)
			}
			if _, ok := p.index[name]; ok {
				return nil, fmt.Errorf("declare option %v: %w %q", spec.Aliases, ErrDuplicateAlias, name)
			}
			p.index[name] = i
			if len(name) == 1 {
				short = append(short, name)
			}
		}
		if len(short) > 1 {
			return nil, fmt.Errorf("declare option %v: %w: %s", spec.Aliases, ErrMultipleShorthands, strings.Join(short, ", "))
		}

		long, ok := lo.Find(spec.Aliases, func(name string) bool { return len(name) > 1 })
		if !ok {
			long = spec.Aliases[0]
		}

		spec.Aliases = append(alias.Group(nil), spec.Aliases...)
		p.specs = append(p.specs, spec)
		p.primary = append(p.primary, long)
		p.shorthand = append(p.shorthand, lo.FirstOrEmpty(short))
	}

	return p, nil
}

func validateAlias(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAlias)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w %q: must not start with '-'", ErrInvalidAlias, name)
	case strings.Contains(name, "="):
		return fmt.Errorf("%w %q: must not contain '='", ErrInvalidAlias, name)
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return fmt.Errorf("%w %q: must not contain whitespace", ErrInvalidAlias, name)
	case len(name) > 1 && utf8.RuneCountInString(name) == 1:
		// pflag shorthands are a single byte.
		return fmt.Errorf("%w %q: single-character aliases must be ASCII", ErrInvalidAlias, name)
	}
	return nil
}

// Specs returns the declarations in declaration order.
func (p *Parser) Specs() []Spec {
	return lo.Map(p.specs, func(spec Spec, _ int) Spec {
		spec.Aliases = append(alias.Group(nil), spec.Aliases...)
		return spec
	})
}

// Lookup returns the declaration that has name among its aliases.
func (p *Parser) Lookup(name string) (Spec, bool) {
	i, ok := p.index[name]
	if !ok {
		return Spec{}, false
	}
	spec := p.specs[i]
	spec.Aliases = append(alias.Group(nil), spec.Aliases...)
	return spec, true
}

// Parse parses args. Unrecognized options are not rejected; they are returned
// as non-option arguments together with the positional arguments.
func (p *Parser) Parse(args []string) (*Set, error) {
	rewritten, passthrough, err := p.prescan(args)
	if err != nil {
		return nil, err
	}

	flags, values := p.flagSet()
	if err := flags.Parse(rewritten); err != nil {
		return nil, &ParseError{Err: err}
	}

	set := &Set{index: make(map[string]int)}
	flags.Visit(func(flag *pflag.Flag) {
		i := p.index[flag.Name]
		for _, name := range p.specs[i].Aliases {
			set.index[name] = len(set.bindings)
		}
		set.bindings = append(set.bindings, Binding{
			Aliases: append(alias.Group(nil), p.specs[i].Aliases...),
			Values:  append([]string{}, values[i].values...),
		})
	})

	set.nonOptions = lo.Map(flags.Args(), func(arg string, _ int) string {
		if original, ok := passthrough[arg]; ok {
			return original
		}
		return arg
	})

	return set, nil
}

// flagSet builds a fresh pflag set so that parses never share state.
func (p *Parser) flagSet() (*pflag.FlagSet, []*bindingValue) {
	flags := pflag.NewFlagSet("options", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if i, ok := p.index[name]; ok {
			return pflag.NormalizedName(p.primary[i])
		}
		return pflag.NormalizedName(name)
	})

	values := make([]*bindingValue, len(p.specs))
	for i, spec := range p.specs {
		values[i] = &bindingValue{arity: spec.Arity}
		flag := flags.VarPF(values[i], p.primary[i], p.shorthand[i], spec.Description)
		if spec.Arity != RequiredArgument {
			flag.NoOptDefVal = noValue
		}
	}
	return flags, values
}

// prescan checks arities and replaces unrecognized option tokens with
// placeholders, so pflag keeps them in order among the positional arguments.
func (p *Parser) prescan(args []string) ([]string, map[string]string, error) {
	rewritten := make([]string, 0, len(args))
	passthrough := make(map[string]string)
	pass := func(arg string) {
		placeholder := fmt.Sprintf("%s%d", passthroughPrefix, len(passthrough))
		passthrough[placeholder] = arg
		rewritten = append(rewritten, placeholder)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			rewritten = append(rewritten, args[i:]...)
			return rewritten, passthrough, nil

		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			spec, ok := p.lookupSpec(name)
			if !ok {
				pass(arg)
				continue
			}
			rewritten = append(rewritten, arg)
			switch {
			case hasValue && spec.Arity == NoArgument:
				return nil, nil, &ParseError{Option: "--" + name, Err: ErrUnexpectedArgument}
			case !hasValue && spec.Arity == RequiredArgument:
				if i+1 >= len(args) {
					return nil, nil, &ParseError{Option: "--" + name, Err: ErrMissingArgument}
				}
				i++
				rewritten = append(rewritten, args[i])
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if !p.knownShorthands(arg) {
				pass(arg)
				continue
			}
			needsNext, err := p.scanShorthands(arg)
			if err != nil {
				return nil, nil, err
			}
			rewritten = append(rewritten, arg)
			if needsNext {
				if i+1 >= len(args) {
					return nil, nil, &ParseError{Option: arg, Err: ErrMissingArgument}
				}
				i++
				rewritten = append(rewritten, args[i])
			}

		default:
			rewritten = append(rewritten, arg)
		}
	}

	return rewritten, passthrough, nil
}

// knownShorthands reports whether every shorthand of a cluster such as
// "-vc" is declared, up to the first one that consumes the rest of the token.
func (p *Parser) knownShorthands(arg string) bool {
	cluster := arg[1:]
	for j := 0; j < len(cluster); j++ {
		spec, ok := p.lookupShorthand(cluster[j : j+1])
		if !ok {
			return false
		}
		if spec.Arity == RequiredArgument {
			return true
		}
		if j+1 < len(cluster) && cluster[j+1] == '=' {
			return true
		}
	}
	return true
}

// scanShorthands walks a known shorthand cluster and reports whether its
// last option still needs the next token as its value.
func (p *Parser) scanShorthands(arg string) (bool, error) {
	cluster := arg[1:]
	for j := 0; j < len(cluster); j++ {
		option := "-" + cluster[j:j+1]
		spec, _ := p.lookupShorthand(cluster[j : j+1])
		rest := cluster[j+1:]
		switch spec.Arity {
		case NoArgument:
			if strings.HasPrefix(rest, "=") {
				return false, &ParseError{Option: option, Err: ErrUnexpectedArgument}
			}
		case RequiredArgument:
			return rest == "", nil
		case OptionalArgument:
			if strings.HasPrefix(rest, "=") {
				return false, nil
			}
		}
	}
	return false, nil
}

func (p *Parser) lookupSpec(name string) (Spec, bool) {
	i, ok := p.index[name]
	if !ok {
		return Spec{}, false
	}
	return p.specs[i], true
}

func (p *Parser) lookupShorthand(short string) (Spec, bool) {
	i, ok := p.index[short]
	if !ok || p.shorthand[i] != short {
		return Spec{}, false
	}
	return p.specs[i], true
}

// bindingValue collects the values given for one option.
type bindingValue struct {
	arity  Arity
	values []string
}

func (v *bindingValue) String() string {
	return strings.Join(v.values, ",")
}

func (v *bindingValue) Set(value string) error {
	if value == noValue {
		return nil
	}
	if v.arity == NoArgument {
		return ErrUnexpectedArgument
	}
	v.values = append(v.values, value)
	return nil
}

func (v *bindingValue) Type() string {
	if v.arity == NoArgument {
		return "bool"
	}
	return "string"
}
