package render

import "github.com/arthur-debert/dashtabs/pkg/tabs"

// GroupSummary describes one group in a listing
type GroupSummary struct {
	Name string `json:"name"`
	Tabs int    `json:"tabs"`
}

// Summaries builds the group listing from a registry
func Summaries(reg *tabs.Registry) []GroupSummary {
	names := reg.Groups()
	out := make([]GroupSummary, 0, len(names))
	for _, name := range names {
		out = append(out, GroupSummary{Name: name, Tabs: reg.Count(name)})
	}
	return out
}

// TabView is the serialisable form of a tab
type TabView struct {
	Group     string `json:"group"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Placement string `json:"placement"`
	Href      string `json:"href,omitempty"`
	Target    string `json:"target,omitempty"`
	Contents  string `json:"contents,omitempty"`
	Markdown  bool   `json:"markdown,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewTabView describes tab; contents are resolved only when withContents is set
func NewTabView(tab *tabs.Tab, withContents bool) TabView {
	view := TabView{
		Group:     tab.Group(),
		Name:      tab.Name(),
		Title:     tab.Title(),
		Placement: tab.Placement().String(),
		Href:      tab.Href(),
		Target:    tab.Target(),
	}
	if !withContents || tab.IsLink() {
		return view
	}

	contents, err := ResolveContents(tab)
	if err != nil {
		view.Error = err.Error()
		return view
	}
	view.Contents = contents.Text
	view.Markdown = contents.Markdown
	return view
}
