package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

// Text renders plain text without any styling
type Text struct {
	out io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{out: w}
}

func (r *Text) RenderGroups(groups []GroupSummary) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(r.out, "No tab groups registered")
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%d %s\n", g.Name, g.Tabs, plural(g.Tabs, "tab", "tabs"))
	}
	return tw.Flush()
}

func (r *Text) RenderGroup(group string, entries []*tabs.Tab) error {
	if _, err := fmt.Fprintf(r.out, "%s\n", group); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, tab := range entries {
		line := fmt.Sprintf("  %s\t%s\t%s", tab.Name(), tab.Title(), tab.Placement())
		if tab.IsLink() {
			line += "\t-> " + tab.Href()
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func (r *Text) RenderTab(tab *tabs.Tab) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s/%s, %s)\n", tab.Title(), tab.Group(), tab.Name(), tab.Placement())

	if tab.IsLink() {
		fmt.Fprintf(&b, "-> %s%s\n", tab.Href(), targetSuffix(tab))
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	contents, err := ResolveContents(tab)
	if err != nil {
		return err
	}
	if contents.Empty() {
		b.WriteString("(no contents)\n")
	} else {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(contents.Text, "\n"))
		b.WriteString("\n")
	}

	_, err = io.WriteString(r.out, b.String())
	return err
}

func targetSuffix(tab *tabs.Tab) string {
	if tab.Target() == "" {
		return ""
	}
	return " (" + tab.Target() + ")"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
