package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"

	"github.com/sublee/strenum/internal/casing"
	"github.com/sublee/strenum/internal/codefmt"
)

// Variant is a member declared by [strenum.Variant] or [strenum.VariantName].
type Variant struct {
	// Name is the member name without the constant prefix.
	Name string

	// Value is the string of the member. It is empty until derived when
	// Derived is true.
	Value string

	// Derived indicates that Value is derived from Name by value rules.
	Derived bool

	pos token.Pos
}

// Pos returns the position of the option declaring the variant.
func (v Variant) Pos() token.Pos { return v.pos }

// ValueRule rewrites a derived string. If Common is set, it is called with all
// derived strings at that point, and its result is passed to Apply.
type ValueRule struct {
	Apply  func(s, common string) string
	Common func([]string) string
}

// Config holds options of a module or an enum.
type Config struct {
	Rules []ValueRule

	AllowDuplicatesEnabled bool
	AllowDuplicates        bool

	ConstPrefixEnabled bool
	ConstPrefix        string

	Variants []Variant
}

// Fork copies the config for an enum in the module. Value rules are inherited
// and can be extended without affecting the module.
func (cfg Config) Fork() Config {
	cfg.Rules = slices.Clone(cfg.Rules)
	cfg.ConstPrefixEnabled = false
	cfg.ConstPrefix = ""
	cfg.Variants = nil
	return cfg
}

// Derive applies the value rules to the given names in registration order and
// returns the derived strings. A common part is only looked for among two or
// more strings.
func (cfg Config) Derive(names []string) []string {
	values := slices.Clone(names)
	for _, rule := range cfg.Rules {
		var common string
		if rule.Common != nil && len(values) > 1 {
			common = rule.Common(values)
		}
		for i := range values {
			values[i] = rule.Apply(values[i], common)
		}
	}
	return values
}

// ParseConfig parses option directives into cfg. forEnum tells whether the
// options are given to [strenum.Enum] rather than [strenum.Module].
func (p *Parser) ParseConfig(cfg *Config, args []ast.Expr, forEnum bool) error {
	var errs error
	for _, arg := range args {
		if _, ok := ast.Unparen(arg).(*ast.Ident); ok {
			err := codefmt.Errorf(p, arg, "option must be inlined, not assigned to variable")
			errs = errors.Join(errs, err)
			continue
		}

		call, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			// Every option type is unexported. The only way to create a valid
			// option is to call an option directive function, or assign it to
			// a variable. The latter one is caught above.
			err := codefmt.Errorf(p, arg, "cannot use %c as option", arg)
			errs = errors.Join(errs, err)
			continue
		}

		if err := p.ParseOption(cfg, call, forEnum); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

func (p *Parser) ParseOption(cfg *Config, call *ast.CallExpr, forEnum bool) error {
	name, ok := p.GetDirective(call)
	if !ok {
		return codefmt.Errorf(p, call, "option must be strenum directive")
	}

	switch name {
	case "Variant":
		if !forEnum {
			break
		}
		return p.ParseOptionVariant(cfg, call)
	case "VariantName":
		if !forEnum {
			break
		}
		return p.ParseOptionVariantName(cfg, call)
	case "ConstPrefix":
		if !forEnum {
			break
		}
		return p.ParseOptionConstPrefix(cfg, call)

	case "AllowDuplicates":
		return p.ParseOptionAllowDuplicates(cfg, call)

	case "ValueToLower":
		return p.ParseOptionValueFunc(cfg, call, strings.ToLower)
	case "ValueToUpper":
		return p.ParseOptionValueFunc(cfg, call, strings.ToUpper)
	case "ValueToTitle":
		return p.ParseOptionValueFunc(cfg, call, casing.Title)
	case "ValueToSnake":
		return p.ParseOptionValueFunc(cfg, call, casing.Snake)
	case "ValueToKebab":
		return p.ParseOptionValueFunc(cfg, call, casing.Kebab)
	case "ValueTrimPrefix":
		return p.ParseOptionValueString(cfg, call, strings.TrimPrefix)
	case "ValueTrimSuffix":
		return p.ParseOptionValueString(cfg, call, strings.TrimSuffix)
	case "ValueReplace":
		return p.ParseOptionValueReplace(cfg, call)
	case "ValueReplaceRegexp":
		return p.ParseOptionValueReplaceRegexp(cfg, call)
	case "ValueTrimCommonPrefix":
		return p.ParseOptionValueCommon(cfg, call, casing.CommonPrefix)
	case "ValueTrimCommonWordPrefix":
		return p.ParseOptionValueCommon(cfg, call, casing.CommonWordPrefix)
	case "ValueReset":
		return p.ParseOptionValueReset(cfg, call)

	case "Module", "Enum":
		return codefmt.Errorf(p, call.Fun, "cannot use %s as option", name)
	}

	if !forEnum {
		return codefmt.Errorf(p, call.Fun, "%s is not supported option for Module", name) // unreachable
	}
	return codefmt.Errorf(p, call.Fun, "%s is not supported option", name)
}

func (p *Parser) ParseOptionVariant(c *Config, call *ast.CallExpr) error {
	name, value, err := parseArgs2[string, string](p, call)
	if err != nil {
		return err
	}

	if err := p.validateVariantName(call.Args[0], name); err != nil {
		return err
	}

	c.Variants = append(c.Variants, Variant{Name: name, Value: value, pos: call.Pos()})
	return nil
}

func (p *Parser) ParseOptionVariantName(c *Config, call *ast.CallExpr) error {
	name, err := parseArgs1[string](p, call)
	if err != nil {
		return err
	}

	if err := p.validateVariantName(call.Args[0], name); err != nil {
		return err
	}

	c.Variants = append(c.Variants, Variant{Name: name, Derived: true, pos: call.Pos()})
	return nil
}

func (p *Parser) validateVariantName(expr ast.Expr, name string) error {
	if name == "_" || !token.IsIdentifier(name) {
		return codefmt.Errorf(p, expr, "variant name %q is not valid identifier", name)
	}
	return nil
}

func (p *Parser) ParseOptionConstPrefix(c *Config, call *ast.CallExpr) error {
	prefix, err := parseArgs1[string](p, call)
	if err != nil {
		return err
	}

	// The prefix is followed by a member name which is an identifier. So the
	// prefix needs to be a valid start of an identifier.
	if prefix != "" && !token.IsIdentifier(prefix) {
		return codefmt.Errorf(p, call.Args[0], "constant prefix %q is not valid identifier", prefix)
	}

	c.ConstPrefixEnabled = true
	c.ConstPrefix = prefix
	return nil
}

func (p *Parser) ParseOptionAllowDuplicates(c *Config, call *ast.CallExpr) error {
	enable, err := parseArgs1[bool](p, call)
	if err != nil {
		return err
	}

	c.AllowDuplicatesEnabled = true
	c.AllowDuplicates = enable
	return nil
}

func (p *Parser) ParseOptionValueFunc(c *Config, call *ast.CallExpr, fn func(string) string) error {
	if err := needArgs0(p, call); err != nil {
		return err
	}

	c.Rules = append(c.Rules, ValueRule{Apply: func(s, _ string) string { return fn(s) }})
	return nil
}

func (p *Parser) ParseOptionValueString(c *Config, call *ast.CallExpr, fn func(string, string) string) error {
	arg, err := parseArgs1[string](p, call)
	if err != nil {
		return err
	}

	c.Rules = append(c.Rules, ValueRule{Apply: func(s, _ string) string { return fn(s, arg) }})
	return nil
}

func (p *Parser) ParseOptionValueReplace(c *Config, call *ast.CallExpr) error {
	from, to, err := parseArgs2[string, string](p, call)
	if err != nil {
		return err
	}

	if from == "" {
		return codefmt.Errorf(p, call.Args[0], "cannot replace empty string")
	}

	c.Rules = append(c.Rules, ValueRule{Apply: func(s, _ string) string { return strings.ReplaceAll(s, from, to) }})
	return nil
}

func (p *Parser) ParseOptionValueReplaceRegexp(c *Config, call *ast.CallExpr) error {
	pattern, repl, err := parseArgs2[string, string](p, call)
	if err != nil {
		return err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return codefmt.Errorf(p, call.Args[0], "invalid regexp pattern: %s", pattern)
	}

	c.Rules = append(c.Rules, ValueRule{Apply: func(s, _ string) string { return re.ReplaceAllString(s, repl) }})
	return nil
}

func (p *Parser) ParseOptionValueCommon(c *Config, call *ast.CallExpr, find func([]string) string) error {
	if err := needArgs0(p, call); err != nil {
		return err
	}

	c.Rules = append(c.Rules, ValueRule{Apply: strings.TrimPrefix, Common: find})
	return nil
}

func (p *Parser) ParseOptionValueReset(c *Config, call *ast.CallExpr) error {
	if err := needArgs0(p, call); err != nil {
		return err
	}

	c.Rules = nil
	return nil
}
