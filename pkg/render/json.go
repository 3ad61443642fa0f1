package render

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

// JSON provides machine-readable output
type JSON struct {
	encoder *json.Encoder
}

func NewJSON(w io.Writer) *JSON {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSON{encoder: encoder}
}

func (r *JSON) RenderGroups(groups []GroupSummary) error {
	if groups == nil {
		groups = []GroupSummary{}
	}
	return r.encoder.Encode(map[string]interface{}{"groups": groups})
}

func (r *JSON) RenderGroup(group string, entries []*tabs.Tab) error {
	views := make([]TabView, 0, len(entries))
	for _, tab := range entries {
		views = append(views, NewTabView(tab, false))
	}
	return r.encoder.Encode(map[string]interface{}{
		"group": group,
		"tabs":  views,
	})
}

func (r *JSON) RenderTab(tab *tabs.Tab) error {
	return r.encoder.Encode(NewTabView(tab, true))
}

// ErrorView is the JSON shape of a failed command
type ErrorView struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError renders an error with its code and details as JSON
func (r *JSON) RenderError(err error) error {
	return r.encoder.Encode(ErrorView{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}
