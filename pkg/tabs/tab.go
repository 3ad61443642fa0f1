package tabs

import (
	"sync"

	"github.com/arthur-debert/dashtabs/pkg/placement"
)

// Tab is one sub-view contributed to a group.
// Only the contents slot may change after registration.
type Tab struct {
	group     string
	name      string
	title     string
	href      string
	target    string
	placement placement.Placement

	mu       sync.RWMutex
	contents interface{}
}

func (t *Tab) Group() string { return t.group }
func (t *Tab) Name() string  { return t.name }
func (t *Tab) Title() string { return t.title }

// Href is the optional external link shown instead of in-page contents
func (t *Tab) Href() string { return t.href }

// Target is the optional link target, e.g. "_blank"
func (t *Tab) Target() string { return t.target }

func (t *Tab) Placement() placement.Placement { return t.placement }

// IsLink reports whether the tab points elsewhere instead of carrying contents
func (t *Tab) IsLink() bool { return t.href != "" }

// Contents returns the renderer payload. The registry never inspects it.
func (t *Tab) Contents() interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.contents
}

// SetContents replaces the renderer payload. This is the deferred content
// slot: the change is visible to every later lookup without re-registering.
func (t *Tab) SetContents(contents interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.contents = contents
}
