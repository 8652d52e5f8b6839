package searcher

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// phaseTableDoc is the on-disk shape for a configurable phase table,
// e.g.:
//
//	secondsByPhase: [0.5, 0.5, 0.5, 0.5, 0.8, ...]
type phaseTableDoc struct {
	SecondsByPhase []float64 `yaml:"secondsByPhase"`
}

// PhaseTableFromYAML loads a 36-entry phase table from YAML, for use in
// place of DefaultPhaseTable (for example as the argument to WallClock);
// DefaultPhaseTable itself is not modified. Time budgets in the phase table are treated as
// configuration rather than a fixed constant.
func PhaseTableFromYAML(r io.Reader) ([PhaseTableSize]time.Duration, error) {
	var table [PhaseTableSize]time.Duration

	var doc phaseTableDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return table, fmt.Errorf("searcher: decode phase table: %w", err)
	}
	if len(doc.SecondsByPhase) != PhaseTableSize {
		return table, fmt.Errorf("searcher: phase table must have %d entries, got %d", PhaseTableSize, len(doc.SecondsByPhase))
	}
	for i, s := range doc.SecondsByPhase {
		table[i] = time.Duration(s * float64(time.Second))
	}
	return table, nil
}
