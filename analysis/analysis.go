package analysis

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/grammar/notation"
	"github.com/npillmayer/gramlab/ll"
	"github.com/npillmayer/gramlab/lr"
	"github.com/npillmayer/gramlab/lr/scanner"
	"github.com/npillmayer/gramlab/lr/scanner/lexmach"
	"github.com/npillmayer/gramlab/lr/slr"
	"golang.org/x/sync/errgroup"
)

// Report is the result of analysing a grammar.
type Report struct {
	g           *grammar.Grammar
	ga          *lr.LRAnalysis
	lltable     *ll.Table
	llConflict  *ll.Conflict
	lrgen       *lr.TableGenerator
	slr1        bool
	slrConflict *lr.Conflict
	lexerOnce   sync.Once
	lexer       *lexmach.LMAdapter
	lexerErr    error
}

// Analyze runs FIRST/FOLLOW analysis and tries to build LL(1) and SLR(1)
// tables for grammar g.
func Analyze(g *grammar.Grammar) *Report {
	r := &Report{g: g}
	r.ga = lr.Analysis(g)
	var err error
	if r.lltable, err = ll.BuildTable(r.ga); err != nil {
		if !errors.As(err, &r.llConflict) {
			tracer().Errorf("unexpected error from LL(1) table construction: %v", err)
		}
	}
	r.lrgen = lr.NewTableGenerator(r.ga)
	if err = r.lrgen.CreateTables(); err != nil {
		if !errors.As(err, &r.slrConflict) {
			tracer().Errorf("unexpected error from SLR(1) table construction: %v", err)
		}
	} else {
		r.slr1 = true
	}
	tracer().Infof("grammar %s: LL(1) = %v, SLR(1) = %v", g.Name, r.IsLL1(), r.IsSLR1())
	return r
}

// AnalyzeText reads a grammar in notation format and analyses it.
// Errors of the notation or of the grammar are returned, table conflicts are
// not.
func AnalyzeText(name, text string) (*Report, error) {
	defs, err := notation.Read(text)
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}
	g, err := grammar.NewGrammar(name, defs)
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}
	return Analyze(g), nil
}

// Grammar returns the analysed grammar.
func (r *Report) Grammar() *grammar.Grammar {
	return r.g
}

// Analysis returns the FIRST/FOLLOW analysis of the grammar.
func (r *Report) Analysis() *lr.LRAnalysis {
	return r.ga
}

// IsLL1 is true if the grammar is LL(1).
func (r *Report) IsLL1() bool {
	return r.lltable != nil
}

// IsSLR1 is true if the grammar is SLR(1).
func (r *Report) IsSLR1() bool {
	return r.slr1
}

// LL1Table returns the LL(1) prediction table, or nil.
func (r *Report) LL1Table() *ll.Table {
	return r.lltable
}

// LL1Conflict returns the conflict which makes the grammar not LL(1), or nil.
func (r *Report) LL1Conflict() *ll.Conflict {
	return r.llConflict
}

// SLR1Tables returns the table generator holding CFSM and SLR(1) tables.
// The CFSM is available even if the grammar is not SLR(1).
func (r *Report) SLR1Tables() *lr.TableGenerator {
	return r.lrgen
}

// SLR1Conflict returns the conflict which makes the grammar not SLR(1), or nil.
func (r *Report) SLR1Conflict() *lr.Conflict {
	return r.slrConflict
}

// --- Checking input --------------------------------------------------------

// Outcome is the result of one parser for an input.
type Outcome struct {
	Accepted bool                 `json:"accepted"`
	Reason   *gramlab.SyntaxError `json:"reason,omitempty"`
	Trace    []gramlab.Step       `json:"trace,omitempty"`
}

// Verdict collects the outcomes of the feasible parsers for an input. An
// outcome is nil if the grammar does not allow the respective method.
type Verdict struct {
	Input []string `json:"input"`
	LL1   *Outcome `json:"ll1,omitempty"`
	SLR1  *Outcome `json:"slr1,omitempty"`
}

// CheckOption configures input checking.
type CheckOption func(*checkConfig)

type checkConfig struct {
	traces bool
}

// WithTraces sets or clears recording of parser steps.
func WithTraces(b bool) CheckOption {
	return func(c *checkConfig) {
		c.traces = b
	}
}

// Check runs every feasible parser on a sequence of terminal names. A
// missing end marker is appended.
func (r *Report) Check(symbols []string, opts ...CheckOption) *Verdict {
	return r.check(symbols, func() scanner.Tokenizer {
		return quiet(scanner.Symbols(r.g, symbols...))
	}, opts)
}

// CheckText scans input text for the terminals of the grammar and runs every
// feasible parser on the result. Input which does not match any terminal
// makes every parser reject. Spans of syntax errors are byte offsets into
// input.
func (r *Report) CheckText(input string, opts ...CheckOption) (*Verdict, error) {
	r.lexerOnce.Do(func() {
		r.lexer, r.lexerErr = lexmach.ForGrammar(r.g)
	})
	if r.lexerErr != nil {
		return nil, fmt.Errorf("cannot create scanner for grammar %s: %w", r.g.Name, r.lexerErr)
	}
	sc, err := r.lexer.Scanner(input)
	if err != nil {
		return nil, fmt.Errorf("cannot scan input: %w", err)
	}
	symbols := tokenNames(r.g, scanner.Drain(r.g, quiet(sc)))
	newScanner := func() scanner.Tokenizer {
		sc, err := r.lexer.Scanner(input)
		if err != nil { // has been scanned successfully before
			panic(err)
		}
		return quiet(sc)
	}
	return r.check(symbols, newScanner, opts), nil
}

// CheckFields runs every feasible parser on input consisting of terminal
// names separated by white space.
func (r *Report) CheckFields(input string, opts ...CheckOption) *Verdict {
	symbols := tokenNames(r.g, scanner.Drain(r.g, quiet(scanner.Fields(r.g, input))))
	return r.check(symbols, func() scanner.Tokenizer {
		return quiet(scanner.Fields(r.g, input))
	}, opts)
}

func (r *Report) check(symbols []string, newScanner func() scanner.Tokenizer, opts []CheckOption) *Verdict {
	conf := &checkConfig{}
	for _, opt := range opts {
		opt(conf)
	}
	v := &Verdict{Input: symbols}
	if r.IsLL1() {
		p := ll.NewParser(r.lltable, ll.RecordTrace(conf.traces))
		accepted, err := p.Parse(newScanner())
		v.LL1 = outcome(accepted, err, p.Trace())
	}
	if r.IsSLR1() {
		p := slr.NewParser(r.g, r.lrgen.GotoTable(), r.lrgen.ActionTable(), slr.RecordTrace(conf.traces))
		accepted, err := p.Parse(newScanner())
		v.SLR1 = outcome(accepted, err, p.Trace())
	}
	return v
}

func outcome(accepted bool, err error, trace []gramlab.Step) *Outcome {
	o := &Outcome{Accepted: accepted, Trace: trace}
	if err != nil && !errors.As(err, &o.Reason) {
		tracer().Errorf("parser failed: %v", err)
	}
	return o
}

func quiet(t scanner.Tokenizer) scanner.Tokenizer {
	t.SetErrorHandler(func(e error) { tracer().Debugf("%v", e) })
	return t
}

// tokenNames returns the lexemes of tokens, without the end marker.
func tokenNames(g *grammar.Grammar, tokens []gramlab.Token) []string {
	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.TokType() != gramlab.TokType(g.EOF().ID) {
			names = append(names, t.Lexeme())
		}
	}
	return names
}

// --- Batches ---------------------------------------------------------------

// Source is a named grammar text in notation format.
type Source struct {
	Name string
	Text string
}

// AnalyzeAll analyses independent grammars in parallel. Reports are returned
// in the order of the sources. The first invalid grammar cancels the
// remaining analyses and its error is returned.
func AnalyzeAll(ctx context.Context, sources []Source) ([]*Report, error) {
	reports := make([]*Report, len(sources))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := AnalyzeText(src.Name, src.Text)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
