package manifest

import (
	"strconv"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/beevik/etree"
)

// XML manifests look like:
//
//	<manifest module="reports">
//	  <tab group="analytics" name="weekly" title="Weekly" placement="end">
//	    <contents markdown="true"># Weekly</contents>
//	  </tab>
//	  <tab group="analytics" name="docs" title="Docs" href="https://..." target="_blank"/>
//	  <tab group="analytics" name="notes" title="Notes" contents_file="notes.md"/>
//	</manifest>
func parseXML(data []byte) (*Manifest, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid XML manifest")
	}

	root := doc.SelectElement("manifest")
	if root == nil {
		return nil, errors.New(errors.ErrManifestParse, "XML manifest has no <manifest> root element")
	}

	m := &Manifest{Module: root.SelectAttrValue("module", "")}
	for _, el := range root.SelectElements("tab") {
		spec := TabSpec{
			Group:        el.SelectAttrValue("group", ""),
			Name:         el.SelectAttrValue("name", ""),
			Title:        el.SelectAttrValue("title", ""),
			Placement:    el.SelectAttrValue("placement", ""),
			Href:         el.SelectAttrValue("href", ""),
			Target:       el.SelectAttrValue("target", ""),
			ContentsFile: el.SelectAttrValue("contents_file", ""),
		}
		if contents := el.SelectElement("contents"); contents != nil {
			spec.Contents = contents.Text()
			markdown, err := strconv.ParseBool(contents.SelectAttrValue("markdown", "false"))
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrManifestParse, "tab %q: invalid markdown attribute", spec.Name)
			}
			spec.Markdown = markdown
		}
		m.Tabs = append(m.Tabs, spec)
	}
	return m, nil
}

func encodeXML(m *Manifest) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("manifest")
	root.CreateAttr("module", m.Module)

	for _, spec := range m.Tabs {
		el := root.CreateElement("tab")
		el.CreateAttr("group", spec.Group)
		el.CreateAttr("name", spec.Name)
		el.CreateAttr("title", spec.Title)
		for _, attr := range []struct{ key, value string }{
			{"placement", spec.Placement},
			{"href", spec.Href},
			{"target", spec.Target},
			{"contents_file", spec.ContentsFile},
		} {
			if attr.value != "" {
				el.CreateAttr(attr.key, attr.value)
			}
		}
		if spec.Contents != "" {
			contents := el.CreateElement("contents")
			contents.SetText(spec.Contents)
			if spec.Markdown {
				contents.CreateAttr("markdown", "true")
			}
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
