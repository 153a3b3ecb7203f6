// Package dataset loads record collections from YAML or JSON files for the
// CLI caller layer. The engine itself never touches the filesystem.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"vitalfew/internal/pareto"
)

// wrapper is the optional file shape carrying metadata next to the records.
type wrapper struct {
	Name    string           `yaml:"name" json:"name"`
	Records []map[string]any `yaml:"records" json:"records"`
}

// LoadFromPath reads a dataset file and returns its records. Format is
// detected by extension (.yaml/.yml/.json) or, failing that, by content.
func LoadFromPath(path string) ([]pareto.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses records from bytes. ext is the file extension for the format
// hint; empty means detect from content. Accepted shapes: a bare list of
// records, or a mapping with a "records" key.
func Load(data []byte, ext string) ([]pareto.Record, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}

	switch ext {
	case ".yaml":
		return loadYAML(data)
	case ".json":
		return loadJSON(data)
	}

	// Detect: JSON documents start with [ or {"records"; everything else
	// is treated as YAML.
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		return loadJSON(data)
	}
	return loadYAML(data)
}

func loadYAML(data []byte) ([]pareto.Record, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err == nil && raw != nil {
		return toRecords(raw), nil
	}

	var w wrapper
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse dataset yaml: %w", err)
	}
	if w.Records == nil {
		return nil, fmt.Errorf("dataset yaml has no records")
	}
	return toRecords(w.Records), nil
}

func loadJSON(data []byte) ([]pareto.Record, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err == nil {
		return toRecords(raw), nil
	}

	var w wrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse dataset json: %w", err)
	}
	if w.Records == nil {
		return nil, fmt.Errorf("dataset json has no records")
	}
	return toRecords(w.Records), nil
}

func toRecords(raw []map[string]any) []pareto.Record {
	records := make([]pareto.Record, len(raw))
	for i, m := range raw {
		records[i] = pareto.Record(m)
	}
	return records
}
