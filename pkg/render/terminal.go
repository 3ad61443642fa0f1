package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dashtabs/pkg/tabs"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Terminal renders styled output for interactive terminals
type Terminal struct {
	out    io.Writer
	opts   Options
	styles Styles
}

func NewTerminal(w io.Writer, opts Options) *Terminal {
	return &Terminal{
		out:    w,
		opts:   opts,
		styles: DefaultStyles(),
	}
}

func (r *Terminal) RenderGroups(groups []GroupSummary) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(r.out, r.styles.Get("Muted").Render("No tab groups registered"))
		return err
	}

	for _, g := range groups {
		count := r.styles.Get("Name").Render(fmt.Sprintf("%d %s", g.Tabs, plural(g.Tabs, "tab", "tabs")))
		if _, err := fmt.Fprintf(r.out, "%s %s\n", pterm.Bold.Sprint(g.Name), count); err != nil {
			return err
		}
	}
	return nil
}

func (r *Terminal) RenderGroup(group string, entries []*tabs.Tab) error {
	var b strings.Builder
	b.WriteString(r.styles.Get("Group").Render(group))
	b.WriteString("\n")

	width := 0
	for _, tab := range entries {
		if len(tab.Name()) > width {
			width = len(tab.Name())
		}
	}

	for _, tab := range entries {
		fmt.Fprintf(&b, "  %s  %s  %s",
			r.placementBadge(tab),
			r.styles.Get("Name").Render(fmt.Sprintf("%-*s", width, tab.Name())),
			r.styles.Get("Title").Render(tab.Title()),
		)
		if tab.IsLink() {
			b.WriteString("  " + r.styles.Get("Link").Render(tab.Href()))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Terminal) RenderTab(tab *tabs.Tab) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n",
		r.styles.Get("Title").Render(tab.Title()),
		r.styles.Get("Name").Render(fmt.Sprintf("(%s/%s)", tab.Group(), tab.Name())),
	)
	b.WriteString(r.placementBadge(tab) + "\n\n")

	if tab.IsLink() {
		b.WriteString(r.styles.Get("Link").Render(tab.Href()) + targetSuffix(tab) + "\n")
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	contents, err := ResolveContents(tab)
	if err != nil {
		b.WriteString(pterm.Error.Prefix.Text + " " + err.Error() + "\n")
		_, _ = io.WriteString(r.out, b.String())
		return err
	}

	switch {
	case contents.Empty():
		b.WriteString(r.styles.Get("Muted").Render("(no contents)") + "\n")
	case contents.Markdown:
		b.WriteString(r.renderMarkdown(contents.Text))
	default:
		b.WriteString(strings.TrimRight(contents.Text, "\n") + "\n")
	}

	_, err = io.WriteString(r.out, b.String())
	return err
}

func (r *Terminal) placementBadge(tab *tabs.Tab) string {
	p := tab.Placement().String()
	return r.styles.Get("Placement-" + p).Render(fmt.Sprintf("%-9s", p))
}

// renderMarkdown falls back to the raw text when glamour cannot render
func (r *Terminal) renderMarkdown(content string) string {
	var options []glamour.TermRendererOption
	if r.opts.Style != "" && r.opts.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.opts.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
