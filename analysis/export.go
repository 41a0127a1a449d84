package analysis

import (
	"encoding/json"

	"github.com/npillmayer/gramlab/grammar"
	"github.com/npillmayer/gramlab/lr"
)

// Export is the presentation form of a report, ready for JSON encoding.
// Terminal sets are listed in symbol order, with ε last. Tables are nested
// maps: LL(1) cells hold productions, ACTION cells hold short action codes
// ("s4", "r2", "acc") where reduce numbers refer to Productions.
type Export struct {
	Grammar      string                       `json:"grammar"`
	Start        string                       `json:"start"`
	Productions  []string                     `json:"productions"`
	NonTerminals []string                     `json:"nonterminals"`
	Terminals    []string                     `json:"terminals"`
	First        map[string][]string          `json:"first"`
	Follow       map[string][]string          `json:"follow"`
	IsLL1        bool                         `json:"is_ll1"`
	IsSLR1       bool                         `json:"is_slr1"`
	LL1Table     map[string]map[string]string `json:"ll1_table,omitempty"`
	LL1Conflict  string                       `json:"ll1_conflict,omitempty"`
	States       int                          `json:"states"`
	SLRAction    map[int]map[string]string    `json:"slr_action,omitempty"`
	SLRGoto      map[int]map[string]int       `json:"slr_goto,omitempty"`
	SLR1Conflict string                       `json:"slr1_conflict,omitempty"`
	Inputs       []*Verdict                   `json:"inputs,omitempty"`
}

// Export creates the presentation form of a report. Verdicts of checked
// inputs may be included.
func (r *Report) Export(verdicts ...*Verdict) *Export {
	g := r.g
	x := &Export{
		Grammar: g.Name,
		Start:   g.Start().Name,
		First:   make(map[string][]string),
		Follow:  make(map[string][]string),
		IsLL1:   r.IsLL1(),
		IsSLR1:  r.IsSLR1(),
		States:  r.lrgen.CFSM().Size(),
		Inputs:  verdicts,
	}
	for _, p := range g.Productions() {
		x.Productions = append(x.Productions, p.String())
	}
	x.NonTerminals = names(g.NonTerminals())
	x.Terminals = names(g.Terminals())
	for _, N := range g.NonTerminals() {
		x.First[N.Name] = r.ga.First(N).Names()
		x.Follow[N.Name] = r.ga.Follow(N).Names()
	}
	if r.IsLL1() {
		x.LL1Table = make(map[string]map[string]string)
		r.lltable.Each(func(A, a *grammar.Symbol, p *grammar.Production) {
			if x.LL1Table[A.Name] == nil {
				x.LL1Table[A.Name] = make(map[string]string)
			}
			x.LL1Table[A.Name][a.Name] = p.String()
		})
	} else if r.llConflict != nil {
		x.LL1Conflict = r.llConflict.Error()
	}
	if r.IsSLR1() {
		x.SLRAction = make(map[int]map[string]string)
		r.lrgen.ActionTable().Each(func(state int, A *grammar.Symbol, a lr.Action) {
			if x.SLRAction[state] == nil {
				x.SLRAction[state] = make(map[string]string)
			}
			x.SLRAction[state][A.Name] = a.Code()
		})
		x.SLRGoto = make(map[int]map[string]int)
		r.lrgen.GotoTable().Each(func(state int, A *grammar.Symbol, target int) {
			if x.SLRGoto[state] == nil {
				x.SLRGoto[state] = make(map[string]int)
			}
			x.SLRGoto[state][A.Name] = target
		})
	} else if r.slrConflict != nil {
		x.SLR1Conflict = r.slrConflict.Error()
	}
	return x
}

// JSON encodes an export with indentation.
func (x *Export) JSON() ([]byte, error) {
	return json.MarshalIndent(x, "", "  ")
}

func names(syms []*grammar.Symbol) []string {
	n := make([]string, len(syms))
	for i, A := range syms {
		n[i] = A.Name
	}
	return n
}
