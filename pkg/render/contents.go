package render

import (
	"fmt"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

// Markdown marks string contents that should be rendered as markdown
type Markdown string

// ContentsFunc computes contents at render time. It may return any
// supported payload except another ContentsFunc chain deeper than maxDepth.
type ContentsFunc func() (interface{}, error)

const maxDepth = 4

// Contents is a tab payload resolved to text
type Contents struct {
	Text     string
	Markdown bool
}

// Empty reports whether there is nothing to show
func (c Contents) Empty() bool {
	return c.Text == ""
}

// ResolveContents interprets the payload of tab
func ResolveContents(tab *tabs.Tab) (Contents, error) {
	return resolve(tab.Contents(), 0)
}

func resolve(payload interface{}, depth int) (Contents, error) {
	switch v := payload.(type) {
	case nil:
		return Contents{}, nil
	case Markdown:
		return Contents{Text: string(v), Markdown: true}, nil
	case string:
		return Contents{Text: v}, nil
	case []byte:
		return Contents{Text: string(v)}, nil
	case ContentsFunc:
		if depth >= maxDepth {
			return Contents{}, errors.New(errors.ErrRender, "contents provider nested too deeply")
		}
		next, err := v()
		if err != nil {
			return Contents{}, errors.Wrap(err, errors.ErrRender, "contents provider failed")
		}
		return resolve(next, depth+1)
	case func() (interface{}, error):
		return resolve(ContentsFunc(v), depth)
	case fmt.Stringer:
		return Contents{Text: v.String()}, nil
	default:
		return Contents{Text: fmt.Sprint(v)}, nil
	}
}
