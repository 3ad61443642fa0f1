package manifest

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/placement"
	"github.com/arthur-debert/dashtabs/pkg/render"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
)

// Manifest is one module's declared tabs
type Manifest struct {
	Module string    `toml:"module" yaml:"module"`
	Tabs   []TabSpec `toml:"tabs" yaml:"tabs"`

	// dir resolves relative contents files; empty for in-memory manifests
	dir string
}

// TabSpec declares one tab
type TabSpec struct {
	Group        string `toml:"group" yaml:"group"`
	Name         string `toml:"name" yaml:"name"`
	Title        string `toml:"title" yaml:"title"`
	Placement    string `toml:"placement,omitempty" yaml:"placement,omitempty"`
	Href         string `toml:"href,omitempty" yaml:"href,omitempty"`
	Target       string `toml:"target,omitempty" yaml:"target,omitempty"`
	Contents     string `toml:"contents,omitempty" yaml:"contents,omitempty"`
	ContentsFile string `toml:"contents_file,omitempty" yaml:"contents_file,omitempty"`
	Markdown     bool   `toml:"markdown,omitempty" yaml:"markdown,omitempty"`
}

// Load reads and parses the manifest at path
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read manifest %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "manifest %s", path).
			WithDetail("path", path)
	}
	m.dir = filepath.Dir(path)
	if m.Module == "" {
		m.Module = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Validate checks every entry and reports all problems at once
func (m *Manifest) Validate() error {
	var problems []error
	seen := make(map[string]bool)

	for i, spec := range m.Tabs {
		where := fmt.Sprintf("tab %d (%s/%s)", i+1, spec.Group, spec.Name)

		if spec.Group == "" {
			problems = append(problems, fmt.Errorf("%s: group is required", where))
		}
		if !tabs.ValidName(spec.Name) {
			problems = append(problems, fmt.Errorf("%s: name must match ^[a-z0-9_]+$", where))
		}
		if spec.Title == "" {
			problems = append(problems, fmt.Errorf("%s: title is required", where))
		}
		if _, err := placement.Parse(spec.Placement); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", where, err))
		}
		if spec.Contents != "" && spec.ContentsFile != "" {
			problems = append(problems, fmt.Errorf("%s: contents and contents_file are mutually exclusive", where))
		}

		key := spec.Group + "\x00" + spec.Name
		if seen[key] {
			problems = append(problems, fmt.Errorf("%s: declared more than once", where))
		}
		seen[key] = true
	}

	if len(problems) > 0 {
		return errors.Wrapf(stderrors.Join(problems...), errors.ErrManifestInvalid,
			"manifest %q has %d problem(s)", m.Module, len(problems)).
			WithDetail("module", m.Module)
	}
	return nil
}

// Apply validates the manifest and registers its tabs in declaration order.
// Registration stops at the first registry error; tabs registered before it
// stay registered.
func (m *Manifest) Apply(reg *tabs.Registry) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for _, spec := range m.Tabs {
		p, _ := placement.Parse(spec.Placement)
		opts := []tabs.Option{tabs.WithPlacement(p)}
		if spec.Href != "" {
			opts = append(opts, tabs.WithHref(spec.Href))
		}
		if spec.Target != "" {
			opts = append(opts, tabs.WithTarget(spec.Target))
		}
		if contents := m.contentsFor(spec); contents != nil {
			opts = append(opts, tabs.WithContents(contents))
		}

		if err := reg.Register(spec.Group, spec.Name, spec.Title, opts...); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manifest) contentsFor(spec TabSpec) interface{} {
	switch {
	case spec.ContentsFile != "":
		path := spec.ContentsFile
		if !filepath.IsAbs(path) && m.dir != "" {
			path = filepath.Join(m.dir, path)
		}
		markdown := spec.Markdown || strings.EqualFold(filepath.Ext(path), ".md")
		return FileContents(path, markdown)
	case spec.Contents == "":
		return nil
	case spec.Markdown:
		return render.Markdown(spec.Contents)
	default:
		return spec.Contents
	}
}

// FileContents returns a provider that reads path every time it is rendered
func FileContents(path string, markdown bool) render.ContentsFunc {
	return func() (interface{}, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read contents file %s", path)
		}
		if markdown {
			return render.Markdown(data), nil
		}
		return string(data), nil
	}
}
