package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store persists analysis reports under a base directory, one subdirectory
// per run holding report.json and, optionally, profile.csv with sampled
// radial quantities.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// ConfigRecord is one per-configuration entry in a report. Field names and
// units are part of the contract external reporting relies on.
type ConfigRecord struct {
	Model          string             `json:"model"`
	Shape          string             `json:"shape,omitempty"`
	ShapeParams    map[string]float64 `json:"shape_params,omitempty"`
	Redshift       string             `json:"redshift,omitempty"`
	RedshiftParams map[string]float64 `json:"redshift_params,omitempty"`
	ThroatRadius   float64            `json:"throat_radius_m"`
	ANECValue      float64            `json:"anec_J"`
	ANECViolated   bool               `json:"anec_violated"`
	RhoThroat      float64            `json:"rho_throat_J_m3"`
	ExoticMatter   bool               `json:"exotic_matter"`
	Traversable    bool               `json:"traversable"`
	Extra          map[string]any     `json:"extra,omitempty"`
}

// Report is a nested mapping of model name to per-configuration records.
type Report struct {
	ID       string                    `json:"id"`
	Analysis string                    `json:"analysis"`
	Created  time.Time                 `json:"created"`
	Models   map[string][]ConfigRecord `json:"models"`
}

// ProfileSample is one row of the radial profile CSV.
type ProfileSample struct {
	L   float64
	B   float64
	Phi float64
	Rho float64
	Pr  float64
	Pt  float64
}

// Save writes a report (and its optional profile) to a fresh run directory
// and returns the run ID.
func (s *Store) Save(analysis string, report *Report, profile []ProfileSample) (string, error) {
	runID := fmt.Sprintf("%s_%d", analysis, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	report.ID = runID
	report.Analysis = analysis
	report.Created = time.Now()

	f, err := os.Create(filepath.Join(runDir, "report.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}

	if len(profile) > 0 {
		if err := s.writeProfile(filepath.Join(runDir, "profile.csv"), profile); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeProfile(path string, profile []ProfileSample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"l", "b", "phi", "rho", "p_r", "p_t"}); err != nil {
		return err
	}
	for _, p := range profile {
		row := []string{
			formatFloat(p.L), formatFloat(p.B), formatFloat(p.Phi),
			formatFloat(p.Rho), formatFloat(p.Pr), formatFloat(p.Pt),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

// List returns the metadata of every stored report, skipping unreadable
// entries.
func (s *Store) List() ([]Report, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}

	reports := make([]Report, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		r, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		reports = append(reports, *r)
	}
	return reports, nil
}

// Load reads one report by run ID.
func (s *Store) Load(runID string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "report.json"))
	if err != nil {
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadProfile reads the radial profile CSV of a run, if present.
func (s *Store) LoadProfile(runID string) ([]ProfileSample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []ProfileSample{}, nil
	}

	samples := make([]ProfileSample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 6 {
			continue
		}
		vals := make([]float64, 6)
		ok := true
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		samples = append(samples, ProfileSample{
			L: vals[0], B: vals[1], Phi: vals[2],
			Rho: vals[3], Pr: vals[4], Pt: vals[5],
		})
	}
	return samples, nil
}

// ExportJSONStdout writes a report to stdout as indented JSON.
func ExportJSONStdout(report *Report) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
