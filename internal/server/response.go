package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/pipeline"
)

// envelope is the JSON shape of every API response except health.
type envelope struct {
	Success      bool              `json:"success"`
	Data         any               `json:"data,omitempty"`
	Error        string            `json:"error,omitempty"`
	Cached       bool              `json:"cached,omitempty"`
	Sources      []string          `json:"sources,omitempty"`
	SourceStatus map[string]string `json:"sourceStatus,omitempty"`
}

type healthResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"`
	ActiveSources int    `json:"activeSources"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any, cached bool) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Cached: cached})
}

func writeResult(w http.ResponseWriter, res *pipeline.Result) {
	writeJSON(w, http.StatusOK, envelope{
		Success:      true,
		Data:         res.Results,
		Cached:       res.Cached,
		Sources:      res.Sources,
		SourceStatus: res.Status.Strings(),
	})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.HTTPStatus(err), envelope{Error: errors.UserMessage(err)})
}
