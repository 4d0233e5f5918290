package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/trajlab/internal/phys"
)

// Store persists convergence-study runs on disk, one directory per run with
// a metadata file and the sampled trajectories.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Summary struct {
	Dt         float64 `json:"dt"`
	Range      float64 `json:"range"`
	MaxHeight  float64 `json:"max_height"`
	FinalSpeed float64 `json:"final_speed"`
	Steps      int     `json:"steps"`
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Speed     float64   `json:"speed"`
	Angle     float64   `json:"angle"`
	Mass      float64   `json:"mass"`
	Drag      float64   `json:"drag"`
	BaseStep  float64   `json:"base_step"`
	Summaries []Summary `json:"summaries"`
}

// Flight pairs one step size with its stored trajectory.
type Flight struct {
	Dt   float64
	Path phys.Trajectory
}

func (s *Store) Save(p phys.Params, baseStep float64, results []*phys.Result) (string, error) {
	runID := fmt.Sprintf("study_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Speed:     p.Speed,
		Angle:     p.Angle,
		Mass:      p.Mass,
		Drag:      p.Drag,
		BaseStep:  baseStep,
		Summaries: make([]Summary, 0, len(results)),
	}
	for _, res := range results {
		meta.Summaries = append(meta.Summaries, Summary{
			Dt:         res.Dt,
			Range:      res.Range,
			MaxHeight:  res.MaxHeight,
			FinalSpeed: res.FinalSpeed,
			Steps:      res.Steps,
		})
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"dt", "x", "y"}); err != nil {
		return "", err
	}
	for _, res := range results {
		dtField := strconv.FormatFloat(res.Dt, 'g', -1, 64)
		for _, pt := range res.Path {
			row := []string{
				dtField,
				strconv.FormatFloat(pt.X, 'f', 6, 64),
				strconv.FormatFloat(pt.Y, 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
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

// LoadFlights reads back the per-dt trajectories in the order they were
// written.
func (s *Store) LoadFlights(runID string) ([]Flight, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	flights := make([]Flight, 0)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}

		dt, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}

		if len(flights) == 0 || flights[len(flights)-1].Dt != dt {
			flights = append(flights, Flight{Dt: dt})
		}
		last := &flights[len(flights)-1]
		last.Path = append(last.Path, phys.Point{X: x, Y: y})
	}

	return flights, nil
}
