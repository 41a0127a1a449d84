package grammar

// Builder is a helper to create grammars rule by rule. Clients call
// LHS(…) for every rule and terminate it with End() or Epsilon():
//
//    b := grammar.NewBuilder("Expressions")
//    b.LHS("E").N("E").T("+").N("T").End()  // E -> E + T
//    b.LHS("E").N("T").End()                // E -> T
//    …
//    g, err := b.Grammar()
//
// In contrast to NewGrammar, the builder knows which symbols a client means to
// be terminals and checks this against the inferred symbol categories.
type Builder struct {
	name     string
	defs     []Definition
	index    map[string]int // LHS name -> position in defs
	terms    map[string]struct{}
	nonterms map[string]struct{}
}

// RuleBuilder collects the right-hand side of a single rule.
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs []string
}

// NewBuilder creates a builder for a grammar with a given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:     name,
		index:    make(map[string]int),
		terms:    make(map[string]struct{}),
		nonterms: make(map[string]struct{}),
	}
}

// LHS starts a new rule for non-terminal name. The first LHS ever called
// determines the start symbol.
func (b *Builder) LHS(name string) *RuleBuilder {
	b.nonterms[name] = struct{}{}
	return &RuleBuilder{b: b, lhs: name}
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.b.nonterms[name] = struct{}{}
	rb.rhs = append(rb.rhs, name)
	return rb
}

// T appends a terminal to the right-hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.b.terms[name] = struct{}{}
	rb.rhs = append(rb.rhs, name)
	return rb
}

// End terminates a rule.
func (rb *RuleBuilder) End() *Builder {
	rb.b.add(rb.lhs, rb.rhs)
	return rb.b
}

// Epsilon terminates a rule with an empty right-hand side. Symbols appended
// before are discarded.
func (rb *RuleBuilder) Epsilon() *Builder {
	rb.b.add(rb.lhs, []string{})
	return rb.b
}

func (b *Builder) add(lhs string, rhs []string) {
	inx, ok := b.index[lhs]
	if !ok {
		inx = len(b.defs)
		b.index[lhs] = inx
		b.defs = append(b.defs, Definition{LHS: lhs})
	}
	b.defs[inx].Alternatives = append(b.defs[inx].Alternatives, rhs)
}

// Grammar creates the grammar. Besides the errors NewGrammar reports, it
// returns an *Error of kind InconsistentSymbol if a symbol appended with T has
// productions, and of kind MissingProductions if a symbol appended with N has
// none.
func (b *Builder) Grammar() (*Grammar, error) {
	for name := range b.terms {
		if _, ok := b.index[name]; ok {
			return nil, &Error{Kind: InconsistentSymbol, Symbol: name}
		}
	}
	for name := range b.nonterms {
		if _, ok := b.index[name]; !ok {
			return nil, &Error{Kind: MissingProductions, Symbol: name}
		}
	}
	return NewGrammar(b.name, b.defs)
}
