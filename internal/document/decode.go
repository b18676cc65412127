package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/boxlayout/internal/layout"
)

// Decode reads one node tree in the given format. Unknown keys are
// rejected so that typos in a design do not silently fall back to
// defaults.
func Decode(r io.Reader, format Format) (*layout.Node, error) {
	var doc nodeDoc
	if err := decodeDoc(r, format, &doc); err != nil {
		return nil, err
	}
	return newBuilder().build(&doc, "root")
}

func decodeDoc(r io.Reader, format Format, doc *nodeDoc) error {
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(doc)
		if err != nil {
			return Wrap(ErrCodeInvalidDocument, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return New(ErrCodeInvalidDocument, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil {
			if errors.Is(err, io.EOF) {
				return New(ErrCodeInvalidDocument, "empty yaml document")
			}
			return Wrap(ErrCodeInvalidDocument, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return Wrap(ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return New(ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	return nil
}

// Load reads the document at path, inferring the format from its
// extension.
func Load(path string) (*layout.Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Wrap(ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, Wrap(ErrCodeRead, err, "open %s", path)
	}
	defer f.Close()

	root, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
