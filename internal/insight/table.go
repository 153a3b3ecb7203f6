package insight

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed multipliers.yaml
var multipliersYAML []byte

// Table maps impact-metric names to a unit dollar value used by the
// financial estimate. Unknown metrics fall back to Default — never an error,
// but the estimate's confidence drops to "low".
type Table struct {
	Default float64            `yaml:"default"`
	Metrics map[string]float64 `yaml:"metrics"`
}

// DefaultTable returns the embedded multiplier defaults.
func DefaultTable() Table {
	var t Table
	if err := yaml.Unmarshal(multipliersYAML, &t); err != nil {
		panic(fmt.Sprintf("load multipliers.yaml: %v", err))
	}
	return t
}

// LoadTable reads a multiplier table from a YAML file. Fields the file omits
// keep the embedded defaults, so a deployment can override a single metric.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read multipliers: %w", err)
	}

	t := DefaultTable()
	var overlay Table
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return Table{}, fmt.Errorf("parse multipliers yaml: %w", err)
	}
	if overlay.Default != 0 {
		t.Default = overlay.Default
	}
	for name, value := range overlay.Metrics {
		t.Metrics[name] = value
	}
	return t, nil
}

// Lookup returns the unit value for metric and whether it was recognized.
func (t Table) Lookup(metric string) (float64, bool) {
	if v, ok := t.Metrics[metric]; ok {
		return v, true
	}
	return t.Default, false
}
