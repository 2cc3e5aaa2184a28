// Package paramfile loads and saves parameter sets as YAML and performs
// the caller-side input cleaning the core deliberately leaves out:
// trimming, empty/duplicate detection, and minimum-count checks, with
// errors that name the offending parameter.
package paramfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/pairgen/pkg/pairwise"
)

// File is the on-disk shape:
//
//	parameters:
//	  - name: Browser
//	    values: [Chrome, Firefox]
//
// A sequence, not a map, so declaration order survives the round trip.
type File struct {
	Parameters []FileParam `yaml:"parameters"`
}

// FileParam is one parameter entry.
type FileParam struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Load reads a parameter set from YAML, cleaning and validating it.
func Load(r io.Reader) (pairwise.Parameters, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing parameter file: %w", err)
	}
	if len(f.Parameters) == 0 {
		return nil, fmt.Errorf("parameter file has no parameters")
	}

	params := make(pairwise.Parameters, 0, len(f.Parameters))
	seen := make(map[string]bool, len(f.Parameters))
	for _, fp := range f.Parameters {
		name := strings.TrimSpace(fp.Name)
		if name == "" {
			return nil, fmt.Errorf("parameter name cannot be empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("parameter %q declared twice", name)
		}
		seen[name] = true

		values, err := CleanValues(fp.Values)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		params = append(params, pairwise.Parameter{Name: name, Values: values})
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// LoadFile reads a parameter set from a file on disk.
func LoadFile(path string) (pairwise.Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parameter file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes a parameter set as YAML.
func Save(w io.Writer, params pairwise.Parameters) error {
	f := File{Parameters: make([]FileParam, len(params))}
	for i, p := range params {
		f.Parameters[i] = FileParam{Name: p.Name, Values: p.Values}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("writing parameter file: %w", err)
	}
	return enc.Close()
}

// CleanValues trims a raw value list, dropping blanks, and enforces
// uniqueness and the two-value minimum.
func CleanValues(raw []string) ([]string, error) {
	values := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if seen[v] {
			return nil, fmt.Errorf("duplicate value %q", v)
		}
		seen[v] = true
		values = append(values, v)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("need at least 2 values, got %d", len(values))
	}
	return values, nil
}

// ParseValues splits a comma-separated value list as entered in the
// editor and cleans it via CleanValues.
func ParseValues(raw string) ([]string, error) {
	return CleanValues(strings.Split(raw, ","))
}

// Example returns the built-in demonstration parameter set.
func Example() pairwise.Parameters {
	return pairwise.Parameters{
		{Name: "Display Mode", Values: []string{"Full Graph", "Text Only", "Limited-Bandwidth"}},
		{Name: "Language", Values: []string{"English", "French", "Spanish", "Turkish"}},
		{Name: "Fonts", Values: []string{"Minimal", "Standard", "Document-loaded"}},
		{Name: "Color", Values: []string{"Monochrome", "Colormap", "16-bit", "True Color"}},
		{Name: "Screen Size", Values: []string{"Hand-held", "laptop", "fullsize"}},
	}
}
