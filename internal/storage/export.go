package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/trajsim/internal/ballistic"
)

type ExportData struct {
	Run     RunMetadata        `json:"run"`
	Samples []ballistic.Sample `json:"samples"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, samples []ballistic.Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *meta, Samples: samples})
}
