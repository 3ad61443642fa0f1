package tabs

import "github.com/arthur-debert/dashtabs/pkg/placement"

// Option sets an optional field of a tab at registration.
type Option func(*Tab)

// WithContents sets the initial renderer payload
func WithContents(contents interface{}) Option {
	return func(t *Tab) { t.contents = contents }
}

// WithHref makes the tab an external link
func WithHref(href string) Option {
	return func(t *Tab) { t.href = href }
}

// WithTarget sets the link target used together with WithHref
func WithTarget(target string) Option {
	return func(t *Tab) { t.target = target }
}

// WithPlacement sets the bucket; the empty placement means placement.Default
func WithPlacement(p placement.Placement) Option {
	return func(t *Tab) { t.placement = p }
}
