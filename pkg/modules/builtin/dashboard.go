// Package builtin holds the modules compiled into dashtabs.
package builtin

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/arthur-debert/dashtabs/internal/version"
	"github.com/arthur-debert/dashtabs/pkg/modules"
	"github.com/arthur-debert/dashtabs/pkg/placement"
	"github.com/arthur-debert/dashtabs/pkg/render"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

const (
	GroupAnalytics = "analytics"
	GroupSettings  = "settings"
)

// Dashboard contributes the core admin tabs
type Dashboard struct{}

func (Dashboard) Name() string { return "dashboard" }

func (d Dashboard) RegisterTabs(reg *tabs.Registry) error {
	if err := reg.Register(GroupAnalytics, "overview", "Overview",
		tabs.WithPlacement(placement.Beginning),
		tabs.WithContents(render.Markdown(overviewText)),
	); err != nil {
		return err
	}

	if err := reg.Register(GroupAnalytics, "groups", "Registered groups",
		tabs.WithContents(render.ContentsFunc(func() (interface{}, error) {
			return render.Markdown(groupsReport(reg)), nil
		})),
	); err != nil {
		return err
	}

	if err := reg.Register(GroupAnalytics, "documentation", "Documentation",
		tabs.WithPlacement(placement.End),
		tabs.WithHref("https://github.com/arthur-debert/dashtabs"),
		tabs.WithTarget("_blank"),
	); err != nil {
		return err
	}

	if err := reg.Register(GroupSettings, "about", "About",
		tabs.WithPlacement(placement.End),
	); err != nil {
		return err
	}

	// Contents are filled in after registration, the way a module supplies
	// views that depend on state it only has once registered.
	about, ok := reg.GetTab(GroupSettings, "about")
	if !ok {
		return fmt.Errorf("tab %s/about vanished after registration", GroupSettings)
	}
	about.SetContents(aboutText())
	return nil
}

const overviewText = `# Dashboard

Tabs are contributed by modules at start-up and listed here by placement:
beginning, middle, then end. Within a placement they keep registration order.`

func groupsReport(reg *tabs.Registry) string {
	var b strings.Builder
	b.WriteString("| Group | Tabs |\n|---|---|\n")
	for _, s := range render.Summaries(reg) {
		fmt.Fprintf(&b, "| %s | %d |\n", s.Name, s.Tabs)
	}
	return b.String()
}

func aboutText() string {
	return fmt.Sprintf("dashtabs %s (commit %s, built %s, %s)",
		version.Version, version.Commit, version.Date, runtime.Version())
}

// Catalog returns every built-in module
func Catalog() modules.Catalog {
	catalog, err := modules.NewCatalog(Dashboard{})
	if err != nil {
		panic(err)
	}
	return catalog
}
