package lr

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/gramlab/grammar"
)

// ToGraphViz exports a CFSM to the Graphviz Dot format.
func (c *CFSM) ToGraphViz(w io.Writer) error {
	var b bytes.Buffer
	b.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, s := range c.States() {
		fmt.Fprintf(&b, "s%03d [fillcolor=%s label=\"{%03d | %s}\"]\n",
			s.ID, nodecolor(s), s.ID, forGraphviz(s))
	}
	for _, e := range c.Edges() {
		fmt.Fprintf(&b, "s%03d -> s%03d [label=\"%s\"]\n", e.From.ID, e.To.ID,
			escapeGraphviz(e.Label.Name))
	}
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func nodecolor(state *CFSMState) string {
	if state.Accept {
		return "lightgray"
	}
	return "white"
}

func forGraphviz(s *CFSMState) string {
	items := s.Items()
	lines := make([]string, len(items))
	for k, i := range items {
		lines[k] = escapeGraphviz(i.String())
	}
	return strings.Join(lines, "\\l") + "\\l"
}

var graphvizEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func escapeGraphviz(s string) string {
	return graphvizEscaper.Replace(s)
}

// ---------------------------------------------------------------------------

// ErrNoTables is returned by exports if parser tables have not been built.
var ErrNoTables = errors.New("lr: parser tables not available")

// GotoTableAsHTML exports a GOTO-table in HTML-format.
func GotoTableAsHTML(lrgen *TableGenerator, w io.Writer) error {
	if lrgen.gototable == nil {
		tracer().Errorf("GOTO table not yet created, cannot export to HTML")
		return ErrNoTables
	}
	T := lrgen.gototable
	return parserTableAsHTML(lrgen, "GOTO", T.matrix.ValueCount(), lrgen.g.NonTerminals(),
		func(state int, A *grammar.Symbol) string {
			if target, ok := T.Goto(state, A); ok {
				return fmt.Sprintf("%d", target)
			}
			return ""
		}, w)
}

// ActionTableAsHTML exports the SLR(1) ACTION-table in HTML-format.
func ActionTableAsHTML(lrgen *TableGenerator, w io.Writer) error {
	if lrgen.actiontable == nil {
		tracer().Errorf("ACTION table not yet created, cannot export to HTML")
		return ErrNoTables
	}
	T := lrgen.actiontable
	return parserTableAsHTML(lrgen, "ACTION", T.Size(), lrgen.g.Terminals(),
		func(state int, A *grammar.Symbol) string {
			return T.Action(state, A).Code()
		}, w)
}

func parserTableAsHTML(lrgen *TableGenerator, tname string, size int, symvec []*grammar.Symbol,
	cell func(int, *grammar.Symbol) string, w io.Writer) error {
	//
	var b bytes.Buffer
	b.WriteString("<html><body>\n")
	fmt.Fprintf(&b, "%s table of size = %d<p>", tname, size)
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td></td>\n")
	for _, A := range symvec {
		fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(A.Name))
	}
	b.WriteString("</tr>\n")
	for _, state := range lrgen.CFSM().States() {
		fmt.Fprintf(&b, "<tr><td>state %d</td>\n", state.ID)
		for _, A := range symvec {
			td := cell(state.ID, A) // table cell
			if td == "" {
				td = "&nbsp;"
			}
			b.WriteString("<td>")
			b.WriteString(td)
			b.WriteString("</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table></body></html>\n")
	_, err := w.Write(b.Bytes())
	return err
}
