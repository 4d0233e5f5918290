package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/trajlab/internal/phys"
)

type exportFlight struct {
	Dt     float64      `json:"dt"`
	Points []phys.Point `json:"points"`
}

type exportData struct {
	ID        string         `json:"id"`
	Speed     float64        `json:"speed"`
	Angle     float64        `json:"angle"`
	Mass      float64        `json:"mass"`
	Drag      float64        `json:"drag"`
	BaseStep  float64        `json:"base_step"`
	Summaries []Summary      `json:"summaries"`
	Flights   []exportFlight `json:"flights"`
}

// ExportJSON writes a run, summaries and trajectories included, as a single
// indented JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, flights []Flight) error {
	data := exportData{
		ID:        meta.ID,
		Speed:     meta.Speed,
		Angle:     meta.Angle,
		Mass:      meta.Mass,
		Drag:      meta.Drag,
		BaseStep:  meta.BaseStep,
		Summaries: meta.Summaries,
		Flights:   make([]exportFlight, 0, len(flights)),
	}
	for _, f := range flights {
		data.Flights = append(data.Flights, exportFlight{Dt: f.Dt, Points: f.Path})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
