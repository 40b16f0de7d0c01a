package testutil

import (
	"fmt"
	"strings"
)

// Step describes one transformation step fixture.
type Step struct {
	Name string
	Type string
	// Extra is rendered as flat child elements of the step.
	Extra map[string]string
}

// Entry describes one job entry fixture.
type Entry struct {
	Name  string
	Type  string
	Extra map[string]string
}

// Hop describes one hop fixture. Enabled renders only when non-empty, so the
// default "no enabled element" case is representable.
type Hop struct {
	From    string
	To      string
	Enabled string
}

// TransformationXML renders a .ktr document with the stock layout: steps as a
// flat list, hops nested under order/hop.
func TransformationXML(name string, steps []Step, hops []Hop) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<transformation>\n")
	fmt.Fprintf(&b, "  <info><name>%s</name></info>\n", name)

	for _, s := range steps {
		b.WriteString("  <step>\n")
		fmt.Fprintf(&b, "    <name>%s</name>\n    <type>%s</type>\n", s.Name, s.Type)
		writeExtras(&b, s.Extra)
		b.WriteString("    <GUI><xloc>100</xloc><yloc>100</yloc></GUI>\n")
		b.WriteString("  </step>\n")
	}

	if len(hops) > 0 {
		b.WriteString("  <order>\n")
		for _, h := range hops {
			writeHop(&b, h)
		}
		b.WriteString("  </order>\n")
	}

	b.WriteString("</transformation>\n")
	return []byte(b.String())
}

// JobXML renders a .kjb document with the stock layout: entries nested under
// an entries wrapper, hops nested under hops/hop.
func JobXML(name string, entries []Entry, hops []Hop) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<job>\n")
	fmt.Fprintf(&b, "  <name>%s</name>\n", name)

	b.WriteString("  <entries>\n")
	for _, e := range entries {
		b.WriteString("    <entry>\n")
		fmt.Fprintf(&b, "      <name>%s</name>\n      <type>%s</type>\n", e.Name, e.Type)
		writeExtras(&b, e.Extra)
		b.WriteString("      <xloc>100</xloc><yloc>100</yloc>\n")
		b.WriteString("    </entry>\n")
	}
	b.WriteString("  </entries>\n")

	if len(hops) > 0 {
		b.WriteString("  <hops>\n")
		for _, h := range hops {
			writeHop(&b, h)
		}
		b.WriteString("  </hops>\n")
	}

	b.WriteString("</job>\n")
	return []byte(b.String())
}

func writeHop(b *strings.Builder, h Hop) {
	b.WriteString("    <hop>")
	fmt.Fprintf(b, "<from>%s</from><to>%s</to>", h.From, h.To)
	if h.Enabled != "" {
		fmt.Fprintf(b, "<enabled>%s</enabled>", h.Enabled)
	}
	b.WriteString("</hop>\n")
}

func writeExtras(b *strings.Builder, extra map[string]string) {
	for k, v := range extra {
		fmt.Fprintf(b, "    <%s>%s</%s>\n", k, v, k)
	}
}
