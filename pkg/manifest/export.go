package manifest

import (
	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/arthur-debert/dashtabs/pkg/render"
	"github.com/arthur-debert/dashtabs/pkg/tabs"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FromTabs describes registered tabs as a manifest. Only static string and
// markdown contents are carried over; computed contents are left out.
func FromTabs(module string, entries []*tabs.Tab) *Manifest {
	m := &Manifest{Module: module}
	for _, tab := range entries {
		spec := TabSpec{
			Group:     tab.Group(),
			Name:      tab.Name(),
			Title:     tab.Title(),
			Placement: tab.Placement().String(),
			Href:      tab.Href(),
			Target:    tab.Target(),
		}
		switch v := tab.Contents().(type) {
		case string:
			spec.Contents = v
		case render.Markdown:
			spec.Contents = string(v)
			spec.Markdown = true
		}
		m.Tabs = append(m.Tabs, spec)
	}
	return m
}

// Encode serialises the manifest
func (m *Manifest) Encode(format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(m)
	case FormatYAML:
		data, err = yaml.Marshal(m)
	case FormatXML:
		data, err = encodeXML(m)
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot encode manifest as %s", format)
	}
	return data, nil
}
