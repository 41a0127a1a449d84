package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/gramlab"
	"github.com/npillmayer/gramlab/analysis"
	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

func renderGrammar(w io.Writer, x *analysis.Export) {
	table := newTable(w, []string{"#", "Production"})
	for i, p := range x.Productions {
		table.Append([]string{strconv.Itoa(i), p})
	}
	table.Render()
}

func renderSets(w io.Writer, r *analysis.Report, x *analysis.Export) {
	table := newTable(w, []string{"Non-terminal", "Nullable", "FIRST", "FOLLOW"})
	for _, N := range r.Grammar().NonTerminals() {
		table.Append([]string{
			N.Name,
			strconv.FormatBool(r.Analysis().Nullable(N)),
			setString(x.First[N.Name]),
			setString(x.Follow[N.Name]),
		})
	}
	table.Render()
}

func setString(names []string) string {
	return "{ " + strings.Join(names, " ") + " }"
}

func renderLL1(w io.Writer, x *analysis.Export) {
	if !x.IsLL1 {
		pterm.Warning.WithWriter(w).Println("grammar is not LL(1): " + x.LL1Conflict)
		return
	}
	table := newTable(w, append([]string{""}, x.Terminals...))
	for _, N := range x.NonTerminals {
		row := []string{N}
		for _, a := range x.Terminals {
			row = append(row, x.LL1Table[N][a])
		}
		table.Append(row)
	}
	table.Render()
}

func renderSLR1(w io.Writer, x *analysis.Export) {
	if !x.IsSLR1 {
		pterm.Warning.WithWriter(w).Println("grammar is not SLR(1): " + x.SLR1Conflict)
		return
	}
	header := []string{"State"}
	header = append(header, x.Terminals...)
	header = append(header, x.NonTerminals...)
	table := newTable(w, header)
	for state := 0; state < x.States; state++ {
		row := []string{strconv.Itoa(state)}
		for _, a := range x.Terminals {
			row = append(row, x.SLRAction[state][a])
		}
		for _, N := range x.NonTerminals {
			if target, ok := x.SLRGoto[state][N]; ok {
				row = append(row, strconv.Itoa(target))
			} else {
				row = append(row, "")
			}
		}
		table.Append(row)
	}
	table.Render()
}

// renderVerdict prints the outcomes for an input. It returns false if any
// parser rejected the input.
func renderVerdict(w io.Writer, v *analysis.Verdict) bool {
	ok := true
	input := strings.Join(v.Input, " ")
	for _, o := range []struct {
		method  string
		outcome *analysis.Outcome
	}{
		{"LL(1)", v.LL1},
		{"SLR(1)", v.SLR1},
	} {
		switch {
		case o.outcome == nil:
			continue
		case o.outcome.Accepted:
			pterm.Success.WithWriter(w).Printfln("%s accepts %q", o.method, input)
		default:
			ok = false
			pterm.Error.WithWriter(w).Printfln("%s rejects %q: %v", o.method, input, o.outcome.Reason)
		}
		if len(o.outcome.Trace) > 0 {
			renderTrace(w, o.outcome.Trace)
		}
	}
	if v.LL1 == nil && v.SLR1 == nil {
		pterm.Warning.WithWriter(w).Printfln("no parser available for %q", input)
	}
	return ok
}

func renderTrace(w io.Writer, trace []gramlab.Step) {
	table := newTable(w, []string{"Step", "Stack", "Input", "Action"})
	for i, st := range trace {
		table.Append([]string{
			strconv.Itoa(i + 1),
			strings.Join(st.Stack, " "),
			strings.Join(st.Input, " "),
			st.Action,
		})
	}
	table.Render()
}

func renderReport(w io.Writer, r *analysis.Report) {
	x := r.Export()
	pterm.DefaultSection.WithWriter(w).Println(fmt.Sprintf("Grammar %s", x.Grammar))
	renderGrammar(w, x)
	pterm.DefaultSection.WithLevel(2).WithWriter(w).Println("FIRST and FOLLOW")
	renderSets(w, r, x)
	pterm.DefaultSection.WithLevel(2).WithWriter(w).Println("LL(1)")
	renderLL1(w, x)
	pterm.DefaultSection.WithLevel(2).WithWriter(w).Println(fmt.Sprintf("SLR(1), %d states", x.States))
	renderSLR1(w, x)
}
