package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/memelab/pkg/category"
	"github.com/matzehuels/memelab/pkg/errors"
	"github.com/matzehuels/memelab/pkg/pipeline"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Success:       true,
		Status:        "ok",
		Timestamp:     s.now().UnixMilli(),
		ActiveSources: len(s.runner.Sources()),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.runner.Categories(), false)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	writeData(w, s.runner.Sources(), false)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	res, err := s.runner.Templates(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeData(w, res.Templates, res.Cached)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	num, err := intParam(q.Get("num"), "num", pipeline.DefaultNum)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	source := q.Get("source")
	if source == "" {
		source = pipeline.SourceAll
	}

	res, err := s.runner.Search(r.Context(), pipeline.SearchOptions{
		Query:  q.Get("q"),
		Source: source,
		Num:    num,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	res, err := s.runner.Trending(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, res)
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.CategoryOptions{Category: chi.URLParam(r, "category")}
	if _, err := category.Resolve(opts.Category); err != nil {
		s.fail(w, r, err)
		return
	}

	var err error
	if opts.Page, err = intParam(q.Get("page"), "page", pipeline.DefaultPage); err != nil {
		s.fail(w, r, err)
		return
	}
	if opts.Num, err = intParam(q.Get("num"), "num", pipeline.DefaultNum); err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.runner.Category(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeResult(w, res)
}

// fail writes err as an error envelope. Server-side failures are logged;
// validation failures are not.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.IsValidation(err) {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()), "err", err)
	}
	writeError(w, err)
}

// intParam parses an optional integer query parameter.
func intParam(raw, name string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "Invalid %s", name)
	}
	return n, nil
}
