// Package report — JSON renderer.
// Emits the run report as indented JSON for machine consumers.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/mdfix/core"
)

// JSONRenderer produces the structured JSON report.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the run report as indented JSON.
func (r *JSONRenderer) Render(report core.RunReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}
