package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID         string               `json:"id"`
	Scenario   string               `json:"scenario"`
	Regime     string               `json:"regime,omitempty"`
	Quantities map[string]float64   `json:"quantities,omitempty"`
	SweepAxis  string               `json:"sweep_axis,omitempty"`
	Points     []float64            `json:"points,omitempty"`
	Series     map[string][]float64 `json:"series,omitempty"`
}

// ExportJSON writes a full run (metadata plus any sweep series) to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		ID:         meta.ID,
		Scenario:   meta.Scenario.Name,
		Regime:     meta.Regime,
		Quantities: meta.Quantities,
		SweepAxis:  meta.SweepAxis,
	}

	if meta.SweepAxis != "" {
		points, series, err := s.LoadSeries(runID)
		if err != nil {
			return err
		}
		data.Points = points
		data.Series = series
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONFile writes the run to a file path.
func (s *Store) ExportJSONFile(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSON(file, runID)
}
