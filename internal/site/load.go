package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a data document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed sample/site.json
var sample []byte

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unsupported data file extension %q", filepath.Ext(path))
	}
}

// Load reads and validates the document at path.
func Load(path string) (*Site, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open site data")
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %s", path)
	}
	return s, nil
}

// Decode reads a document from r and validates it.
func Decode(r io.Reader, format Format) (*Site, error) {
	var s Site
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(err, "decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the bundled sample document.
func Default() *Site {
	s, err := Decode(bytes.NewReader(sample), FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("bundled sample site is invalid: %v", err))
	}
	return s
}

// ValidationError lists every problem found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid site data: " + strings.Join(e.Problems, "; ")
}

// Validate checks the fields the page cannot be rendered without.
func (s *Site) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Hero.Title) == "" {
		problems = append(problems, "hero.title is required")
	}
	for i, w := range s.Works.Items {
		if strings.TrimSpace(w.Title) == "" {
			problems = append(problems, fmt.Sprintf("works.items[%d].title is required", i))
		}
	}
	for i, job := range s.Experience.Items {
		if strings.TrimSpace(job.Company) == "" {
			problems = append(problems, fmt.Sprintf("experience.items[%d].company is required", i))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
