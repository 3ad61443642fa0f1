package render

import (
	"io"
	"os"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/registry"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

// Renderer writes groups and tabs in one output format
type Renderer interface {
	RenderGroups(groups []GroupSummary) error
	RenderGroup(group string, entries []*tabs.Tab) error
	RenderTab(tab *tabs.Tab) error
}

// Options tune renderers that support them
type Options struct {
	// Style is the glamour style for markdown contents
	Style string
	// Width wraps markdown contents; 0 lets glamour decide
	Width int
}

// Factory builds a renderer writing to w
type Factory func(w io.Writer, opts Options) Renderer

var factories = registry.New[Factory]()

func init() {
	registry.MustRegister(factories, FormatText.String(), func(w io.Writer, _ Options) Renderer {
		return NewText(w)
	})
	registry.MustRegister(factories, FormatTerminal.String(), func(w io.Writer, opts Options) Renderer {
		return NewTerminal(w, opts)
	})
	registry.MustRegister(factories, FormatJSON.String(), func(w io.Writer, _ Options) Renderer {
		return NewJSON(w)
	})
}

// Formats returns the names of the concrete formats
func Formats() []string {
	return factories.List()
}

// New returns the renderer for format. FormatAuto is resolved against w when
// it is a file, and falls back to plain text otherwise.
func New(format Format, w io.Writer, opts Options) (Renderer, error) {
	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	factory, err := factories.Get(format.String())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRender, "no renderer for format %s", format)
	}
	return factory(w, opts), nil
}
