package render_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/placement"
	"github.com/arthur-debert/dashtabs/pkg/render"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string { return "from stringer" }

func newRegistry(t *testing.T) *tabs.Registry {
	t.Helper()
	reg := tabs.New()
	require.NoError(t, reg.Register("analytics", "exports", "Exports",
		tabs.WithPlacement(placement.End),
		tabs.WithHref("https://example.com/exports"),
		tabs.WithTarget("_blank")))
	require.NoError(t, reg.Register("analytics", "overview", "Overview",
		tabs.WithPlacement(placement.Beginning),
		tabs.WithContents("All courses at a glance")))
	require.NoError(t, reg.Register("analytics", "students", "Students"))
	require.NoError(t, reg.Register("settings", "general", "General"))
	return reg
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    render.Format
		wantErr bool
	}{
		{"", render.FormatAuto, false},
		{"auto", render.FormatAuto, false},
		{"terminal", render.FormatTerminal, false},
		{"term", render.FormatTerminal, false},
		{"plain", render.FormatText, false},
		{"JSON", render.FormatJSON, false},
		{"html", render.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := render.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatListsFormats(t *testing.T) {
	_, err := render.ParseFormat("html")
	assert.EqualError(t, err, `unknown format "html": use auto, json, term, text`)
}

func TestResolveContents(t *testing.T) {
	tests := []struct {
		name     string
		payload  interface{}
		want     render.Contents
		wantCode errors.ErrorCode
	}{
		{"nil", nil, render.Contents{}, ""},
		{"string", "hello", render.Contents{Text: "hello"}, ""},
		{"bytes", []byte("raw"), render.Contents{Text: "raw"}, ""},
		{"markdown", render.Markdown("# Title"), render.Contents{Text: "# Title", Markdown: true}, ""},
		{"stringer", stringer{}, render.Contents{Text: "from stringer"}, ""},
		{"other value", 42, render.Contents{Text: "42"}, ""},
		{
			"lazy provider",
			render.ContentsFunc(func() (interface{}, error) { return render.Markdown("*lazy*"), nil }),
			render.Contents{Text: "*lazy*", Markdown: true},
			"",
		},
		{
			"plain func",
			func() (interface{}, error) { return "computed", nil },
			render.Contents{Text: "computed"},
			"",
		},
		{
			"failing provider",
			render.ContentsFunc(func() (interface{}, error) { return nil, stderrors.New("boom") }),
			render.Contents{},
			errors.ErrRender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := tabs.New()
			require.NoError(t, reg.Register("g", "tab", "Tab", tabs.WithContents(tt.payload)))
			tab, _ := reg.GetTab("g", "tab")

			got, err := render.ResolveContents(tab)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveContentsDepthLimit(t *testing.T) {
	var loop render.ContentsFunc
	loop = func() (interface{}, error) { return loop, nil }

	reg := tabs.New()
	require.NoError(t, reg.Register("g", "loop", "Loop", tabs.WithContents(loop)))
	tab, _ := reg.GetTab("g", "loop")

	_, err := render.ResolveContents(tab)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	r, err := render.New(render.FormatAuto, &buf, render.Options{})
	require.NoError(t, err)
	assert.IsType(t, &render.Text{}, r, "non-file writers fall back to text")

	r, err = render.New(render.FormatJSON, &buf, render.Options{})
	require.NoError(t, err)
	assert.IsType(t, &render.JSON{}, r)

	r, err = render.New(render.FormatTerminal, &buf, render.Options{})
	require.NoError(t, err)
	assert.IsType(t, &render.Terminal{}, r)

	_, err = render.New(render.Format(99), &buf, render.Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))

	assert.Equal(t, []string{"json", "term", "text"}, render.Formats())
}

func TestTextRenderer(t *testing.T) {
	reg := newRegistry(t)

	t.Run("groups", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render.NewText(&buf).RenderGroups(render.Summaries(reg)))
		assert.Equal(t, "analytics  3 tabs\nsettings   1 tab\n", buf.String())
	})

	t.Run("no groups", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render.NewText(&buf).RenderGroups(nil))
		assert.Equal(t, "No tab groups registered\n", buf.String())
	})

	t.Run("group keeps placement order", func(t *testing.T) {
		var buf bytes.Buffer
		group, _ := reg.GetTabGroup("analytics")
		require.NoError(t, render.NewText(&buf).RenderGroup("analytics", group))

		out := buf.String()
		assert.Regexp(t, `(?s)overview.*students.*exports`, out)
		assert.Contains(t, out, "-> https://example.com/exports")
	})

	t.Run("tab with contents", func(t *testing.T) {
		var buf bytes.Buffer
		tab, _ := reg.GetTab("analytics", "overview")
		require.NoError(t, render.NewText(&buf).RenderTab(tab))
		assert.Equal(t, "Overview (analytics/overview, beginning)\n\nAll courses at a glance\n", buf.String())
	})

	t.Run("tab without contents", func(t *testing.T) {
		var buf bytes.Buffer
		tab, _ := reg.GetTab("analytics", "students")
		require.NoError(t, render.NewText(&buf).RenderTab(tab))
		assert.Contains(t, buf.String(), "(no contents)")
	})

	t.Run("link tab", func(t *testing.T) {
		var buf bytes.Buffer
		tab, _ := reg.GetTab("analytics", "exports")
		require.NoError(t, render.NewText(&buf).RenderTab(tab))
		assert.Contains(t, buf.String(), "-> https://example.com/exports (_blank)")
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("disk full") }

func TestTextRendererReportsWriteErrors(t *testing.T) {
	r := render.NewText(failingWriter{})

	assert.EqualError(t, r.RenderGroup("empty", nil), "disk full")
	assert.EqualError(t, r.RenderGroups(nil), "disk full")
}

func TestTextRendererSeesLazyContents(t *testing.T) {
	reg := newRegistry(t)
	tab, _ := reg.GetTab("analytics", "students")
	tab.SetContents(render.ContentsFunc(func() (interface{}, error) {
		return "128 enrolled", nil
	}))

	var buf bytes.Buffer
	again, _ := reg.GetTab("analytics", "students")
	require.NoError(t, render.NewText(&buf).RenderTab(again))
	assert.Contains(t, buf.String(), "128 enrolled")
}

func TestJSONRenderer(t *testing.T) {
	reg := newRegistry(t)

	t.Run("groups", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render.NewJSON(&buf).RenderGroups(render.Summaries(reg)))

		var got struct {
			Groups []render.GroupSummary `json:"groups"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []render.GroupSummary{{Name: "analytics", Tabs: 3}, {Name: "settings", Tabs: 1}}, got.Groups)
	})

	t.Run("group", func(t *testing.T) {
		var buf bytes.Buffer
		group, _ := reg.GetTabGroup("analytics")
		require.NoError(t, render.NewJSON(&buf).RenderGroup("analytics", group))

		var got struct {
			Group string           `json:"group"`
			Tabs  []render.TabView `json:"tabs"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "analytics", got.Group)
		require.Len(t, got.Tabs, 3)
		assert.Equal(t, "overview", got.Tabs[0].Name)
		assert.Equal(t, "beginning", got.Tabs[0].Placement)
		assert.Empty(t, got.Tabs[0].Contents, "group listings omit contents")
		assert.Equal(t, "https://example.com/exports", got.Tabs[2].Href)
	})

	t.Run("tab with failing contents", func(t *testing.T) {
		tab, _ := reg.GetTab("analytics", "students")
		tab.SetContents(render.ContentsFunc(func() (interface{}, error) {
			return nil, stderrors.New("query failed")
		}))

		var buf bytes.Buffer
		require.NoError(t, render.NewJSON(&buf).RenderTab(tab))

		var got render.TabView
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Contains(t, got.Error, "query failed")
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render.NewJSON(&buf).RenderError(stderrors.New("bad")))
		assert.JSONEq(t, `{"error":"bad","code":"UNKNOWN"}`, buf.String())
	})

	t.Run("coded_error", func(t *testing.T) {
		var buf bytes.Buffer
		err := errors.New(errors.ErrNotFound, "no tab group named \"x\"").WithDetail("group", "x")
		require.NoError(t, render.NewJSON(&buf).RenderError(err))
		assert.JSONEq(t,
			`{"error":"[NOT_FOUND] no tab group named \"x\"","code":"NOT_FOUND","details":{"group":"x"}}`,
			buf.String())
	})
}

func TestTerminalRenderer(t *testing.T) {
	reg := newRegistry(t)
	r := render.NewTerminal(&bytes.Buffer{}, render.Options{Width: 60})

	t.Run("group", func(t *testing.T) {
		var buf bytes.Buffer
		r := render.NewTerminal(&buf, render.Options{})
		group, _ := reg.GetTabGroup("analytics")
		require.NoError(t, r.RenderGroup("analytics", group))

		out := buf.String()
		assert.Contains(t, out, "analytics")
		assert.Regexp(t, `(?s)Overview.*Students.*Exports`, out)
	})

	t.Run("markdown tab", func(t *testing.T) {
		var buf bytes.Buffer
		r := render.NewTerminal(&buf, render.Options{Style: "notty", Width: 60})
		tab, _ := reg.GetTab("settings", "general")
		tab.SetContents(render.Markdown("# Weekly\n\nEnrollment is *up*."))

		require.NoError(t, r.RenderTab(tab))
		assert.Contains(t, buf.String(), "Weekly")
		assert.Contains(t, buf.String(), "Enrollment")
	})

	t.Run("failing contents", func(t *testing.T) {
		tab, _ := reg.GetTab("analytics", "students")
		tab.SetContents(render.ContentsFunc(func() (interface{}, error) {
			return nil, stderrors.New("query failed")
		}))

		err := r.RenderTab(tab)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	})
}

func TestParseStyles(t *testing.T) {
	styles := render.DefaultStyles()
	assert.Contains(t, styles, "Group")
	assert.Contains(t, styles, "Placement-beginning")

	_, err := render.ParseStyles([]byte("styles:\n  Bad:\n    foreground: nowhere\n"))
	assert.Error(t, err)

	_, err = render.ParseStyles([]byte("styles: ["))
	assert.Error(t, err)
}
