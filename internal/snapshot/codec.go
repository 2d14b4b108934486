package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath выбирает YAML для .yaml/.yml, иначе JSON. Суффиксы
// резервных копий (.backup, .backup1, ...) не учитываются.
func FormatForPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for strings.HasPrefix(ext, ".backup") {
		path = path[:len(path)-len(ext)]
		ext = strings.ToLower(filepath.Ext(path))
	}
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (s *Snapshot) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

func Unmarshal(data []byte, format Format) (*Snapshot, error) {
	var s Snapshot
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode json snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
	if s.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	return &s, nil
}
