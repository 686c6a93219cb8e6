// Package web serves the interactive page: a parameter form recomputing the
// projection on every submission, the workbook download and a JSON API.
package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/etnz/simulador"
	"github.com/etnz/simulador/renderer"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server holds the HTTP handlers.
type Server struct {
	log *logrus.Logger
	// base is the parameter set the form starts from.
	base simulador.Params
}

// NewServer returns a server whose form starts from base.
func NewServer(base simulador.Params, log *logrus.Logger) *Server {
	return &Server{log: log, base: base}
}

// Router returns the routes of the server.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/", s.Page).Methods(http.MethodGet)
	r.HandleFunc("/export.xlsx", s.Export).Methods(http.MethodGet)
	r.HandleFunc("/api/projection", s.API).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

// ParseParams reads the parameters from form values, in input unit, on top of
// base. It returns the parsed parameters even when some are invalid, so that
// the form can show them back.
func ParseParams(form url.Values, base simulador.Params) (simulador.Params, error) {
	p := base
	var errs simulador.ValidationErrors
	for _, f := range simulador.Fields {
		v := form.Get(f.Key)
		if v == "" {
			continue
		}
		if err := f.ParseInput(&p, v); err != nil {
			var verr *simulador.ValidationError
			if !errors.As(err, &verr) {
				return p, err
			}
			errs = append(errs, verr)
		}
	}
	if len(errs) > 0 {
		return p, errs
	}
	return p, p.Validate()
}

// project parses and runs the request's parameters.
func (s *Server) project(r *http.Request) (simulador.Params, *simulador.Projection, error) {
	p, err := ParseParams(r.URL.Query(), s.base)
	if err != nil {
		return p, nil, err
	}
	proj, err := simulador.Project(p)
	return p, proj, err
}

// Page renders the form and the selected tab.
func (s *Server) Page(w http.ResponseWriter, r *http.Request) {
	p, proj, err := s.project(r)
	data := renderer.PageData{Params: p, Tab: r.URL.Query().Get("tab"), Projection: proj}
	status := http.StatusOK
	switch {
	case errors.Is(err, simulador.ErrInvalidParameter):
		data.Errors = simulador.ByField(err)
		status = http.StatusUnprocessableEntity
	case err != nil:
		s.log.WithError(err).Error("projection failed")
		data.Failure = "Não foi possível calcular a projeção."
		status = http.StatusInternalServerError
	}

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, data); err != nil {
		s.log.WithError(err).Error("cannot render page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Export downloads the workbook.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	_, proj, err := s.project(r)
	if err != nil {
		s.httpError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := (renderer.Workbook{}).Render(&buf, proj); err != nil {
		s.log.WithError(err).Error("cannot write workbook")
		http.Error(w, "cannot write workbook", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.WorkbookMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="`+renderer.WorkbookFilename+`"`)
	buf.WriteTo(w)
}

// API returns the projection as JSON.
func (s *Server) API(w http.ResponseWriter, r *http.Request) {
	_, proj, err := s.project(r)
	if err != nil {
		s.httpError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(proj); err != nil {
		s.log.WithError(err).Error("cannot encode projection")
	}
}

// httpError reports validation errors as 422 with the messages by field, and
// anything else as a generic 500.
func (s *Server) httpError(w http.ResponseWriter, err error) {
	if errors.Is(err, simulador.ErrInvalidParameter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"errors": simulador.ByField(err)})
		return
	}
	s.log.WithError(err).Error("projection failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request")
	})
}
