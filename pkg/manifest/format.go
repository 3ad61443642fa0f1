package manifest

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dashtabs/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// ParseFormat accepts a format name such as "toml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrManifestParse, "unsupported manifest format %q", s)
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Parse decodes a manifest
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid TOML manifest")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid YAML manifest")
		}
	case FormatXML:
		parsed, err := parseXML(data)
		if err != nil {
			return nil, err
		}
		m = *parsed
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "unsupported manifest format %q", format)
	}
	return &m, nil
}
