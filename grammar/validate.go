package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// Unresolved describes a rule name which is referenced, but never defined.
type Unresolved struct {
	Name         string
	ReferencedBy []string // rules containing a reference to Name
}

// ValidationError is returned by Validate. It collects every problem found
// in a grammar, not just the first one.
type ValidationError struct {
	Grammar    string
	Empty      bool         // grammar has no rules
	Duplicates []string     // rule names defined more than once
	Unresolved []Unresolved // references to undefined rules
}

func (e *ValidationError) Error() string {
	var msgs []string
	if e.Empty {
		msgs = append(msgs, "grammar has no rules")
	}
	if len(e.Duplicates) > 0 {
		msgs = append(msgs, "rules defined more than once: "+strings.Join(e.Duplicates, ", "))
	}
	if len(e.Unresolved) > 0 {
		names := make([]string, len(e.Unresolved))
		for i, u := range e.Unresolved {
			names[i] = fmt.Sprintf("%s (referenced by %s)", u.Name, strings.Join(u.ReferencedBy, ", "))
		}
		msgs = append(msgs, "undefined rules: "+strings.Join(names, ", "))
	}
	return fmt.Sprintf("invalid grammar %s: %s", e.Grammar, strings.Join(msgs, "; "))
}

// Validate checks that a grammar is non-empty, that no rule name is defined
// twice, and that every reference resolves to a rule.
// It returns nil or a *ValidationError.
func Validate(g *Grammar) error {
	verr := &ValidationError{Grammar: g.Name}
	if len(g.Rules) == 0 {
		verr.Empty = true
		return verr
	}
	seen := make(map[string]bool)
	for _, r := range g.Rules {
		if seen[r.Name] {
			verr.Duplicates = append(verr.Duplicates, r.Name)
		}
		seen[r.Name] = true
	}
	Symbols(g).Each(func(name string, sym *Symbol) {
		if !sym.Defined() {
			verr.Unresolved = append(verr.Unresolved, Unresolved{
				Name:         name,
				ReferencedBy: dedup(sym.Refs),
			})
		}
	})
	if len(verr.Duplicates) == 0 && len(verr.Unresolved) == 0 {
		return nil
	}
	tracer().Errorf("%v", verr)
	return verr
}

func dedup(names []string) []string {
	var r []string
	seen := make(map[string]bool)
	for _, n := range names {
		if !seen[n] {
			r = append(r, n)
			seen[n] = true
		}
	}
	return r
}

// Fingerprint computes a stable hash of the grammar's rules. Grammars which
// render to the same DSL text have the same fingerprint; the grammar's name
// is not part of it.
func Fingerprint(g *Grammar) (string, error) {
	rules := struct {
		Rules []string
	}{
		Rules: make([]string, len(g.Rules)),
	}
	for i, r := range g.Rules {
		rules.Rules[i] = r.String()
	}
	return structhash.Hash(rules, 1)
}
