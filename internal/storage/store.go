package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/plasmalab/internal/report"
	"github.com/san-kum/plasmalab/internal/scenario"
	"github.com/san-kum/plasmalab/internal/sweep"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Scenario   *scenario.Scenario `json:"scenario"`
	Timestamp  time.Time          `json:"timestamp"`
	Regime     string             `json:"regime,omitempty"`
	Quantities map[string]float64 `json:"quantities"`
	SweepAxis  string             `json:"sweep_axis,omitempty"`
	SweepSteps int                `json:"sweep_steps,omitempty"`
}

// Save persists a single-scenario report run.
func (s *Store) Save(r *report.Report) (string, error) {
	meta := RunMetadata{
		ID:         fmt.Sprintf("%s_%d", r.Scenario.Name, time.Now().Unix()),
		Scenario:   r.Scenario,
		Timestamp:  time.Now(),
		Regime:     r.Regime(),
		Quantities: r.Quantities(),
	}
	if err := s.writeMeta(meta); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// SaveSweep persists sweep metadata plus the per-point series.
func (s *Store) SaveSweep(base *scenario.Scenario, res *sweep.Result) (string, error) {
	meta := RunMetadata{
		ID:         fmt.Sprintf("%s_sweep_%d", base.Name, time.Now().Unix()),
		Scenario:   base,
		Timestamp:  time.Now(),
		SweepAxis:  string(res.Axis),
		SweepSteps: len(res.Points),
	}
	if err := s.writeMeta(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(s.baseDir, meta.ID, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{string(res.Axis), "collision_freq", "maxwellian_freq", "plasma_freq", "gyro_freq", "coulomb_log"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range res.Points {
		row := []string{
			formatFloat(res.Points[i]),
			formatFloat(res.CollisionFreq[i]),
			formatFloat(res.MaxwellianFreq[i]),
			formatFloat(res.PlasmaFreq[i]),
			formatFloat(res.GyroFreq[i]),
			formatFloat(res.CoulombLog[i]),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return meta.ID, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', 9, 64)
}

func (s *Store) writeMeta(meta RunMetadata) error {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads a persisted sweep back as column series keyed by
// header name, plus the axis points from the first column.
func (s *Store) LoadSeries(runID string) (points []float64, series map[string][]float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, map[string][]float64{}, nil
	}

	header := records[0]
	series = make(map[string][]float64, len(header)-1)
	points = make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		p, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		points = append(points, p)
		for col := 1; col < len(record); col++ {
			v, err := strconv.ParseFloat(record[col], 64)
			if err != nil {
				v = 0
			}
			series[header[col]] = append(series[header[col]], v)
		}
	}

	return points, series, nil
}
