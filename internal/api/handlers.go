package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/advisory"
	"github.com/gearkit/cycloid/render"
	"github.com/gearkit/cycloid/store"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := bindParams(w, r)
	if !ok {
		return
	}
	points := s.designer().Profile(p)
	respondOK(w, r, map[string]any{"points": points})
}

func (s *Server) handlePhysics(w http.ResponseWriter, r *http.Request) {
	p, ok := bindParams(w, r)
	if !ok {
		return
	}
	m := s.designer().Analyze(p)
	respondOK(w, r, map[string]any{
		"min_curvature_radius": m.MinCurvatureRadius,
		"max_pressure_angle":   m.MaxPressureAngle,
		"undercut":             m.Undercut(),
		"points":               m.Points,
	})
}

func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	p, ok := bindParams(w, r)
	if !ok {
		return
	}
	respondOK(w, r, s.designer().CheckQuality(p))
}

// pathCommand is the wire shape of one path element.
type pathCommand struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args,omitempty"`
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	p, ok := bindParams(w, r)
	if !ok {
		return
	}
	path := s.designer().AssemblePath(p)

	commands := make([]pathCommand, 0, len(path.Elements()))
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case cycloid.MoveTo:
			commands = append(commands, pathCommand{Op: "move", Args: []float64{e.Point.X, e.Point.Y}})
		case cycloid.LineTo:
			commands = append(commands, pathCommand{Op: "line", Args: []float64{e.Point.X, e.Point.Y}})
		case cycloid.CubicTo:
			commands = append(commands, pathCommand{Op: "cubic", Args: []float64{
				e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y,
			}})
		case cycloid.Close:
			commands = append(commands, pathCommand{Op: "close"})
		}
	}
	respondOK(w, r, map[string]any{
		"fill_rule": path.Rule.String(),
		"commands":  commands,
	})
}

func (s *Server) handleExportDXF(w http.ResponseWriter, r *http.Request) {
	p, ok := bindParams(w, r)
	if !ok {
		return
	}
	points := s.designer().Profile(p)

	w.Header().Set("Content-Type", "application/dxf")
	w.Header().Set("Content-Disposition", `attachment; filename="cycloid.dxf"`)
	if err := cycloid.ExportDXF(w, points, p); err != nil {
		s.log().Warn("dxf export failed", "error", err, "request_id", requestID(r.Context()))
	}
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	p, ok := bindParams(w, r)
	if !ok {
		return
	}
	width := queryInt(r, "width", 800)
	height := queryInt(r, "height", 800)
	if width < 16 || width > 4096 || height < 16 || height > 4096 {
		respondError(w, r, http.StatusBadRequest, "width and height must be between 16 and 4096")
		return
	}

	path := s.designer().AssemblePath(p)
	w.Header().Set("Content-Type", "image/png")
	if err := render.WritePNG(w, path, width, height); err != nil {
		s.log().Warn("preview failed", "error", err, "request_id", requestID(r.Context()))
	}
}

// adviseRequest carries a concrete design and the wall constraint for
// the advisory service.
type adviseRequest struct {
	Params           paramsRequest `json:"parameters" validate:"required"`
	MinWallThickness float64       `json:"min_wall_thickness" validate:"gte=0"`
}

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	if !s.Advisor.Enabled() {
		respondError(w, r, http.StatusServiceUnavailable, "advisory service not configured")
		return
	}

	var req adviseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf("decode body: %v", err))
		return
	}
	if err := validatorInstance().Struct(req); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	advice, err := s.Advisor.Suggest(r.Context(), req.Params.params(), req.MinWallThickness)
	if errors.Is(err, advisory.ErrUnavailable) {
		respondError(w, r, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		respondError(w, r, http.StatusBadGateway, err.Error())
		return
	}
	respondOK(w, r, advice)
}

// askRequest carries free-text requirements for the advisory service.
type askRequest struct {
	Requirements string `json:"requirements" validate:"required"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if !s.Advisor.Enabled() {
		respondError(w, r, http.StatusServiceUnavailable, "advisory service not configured")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, fmt.Sprintf("decode body: %v", err))
		return
	}
	if err := validatorInstance().Struct(req); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	answer, err := s.Advisor.Ask(r.Context(), req.Requirements)
	if errors.Is(err, advisory.ErrUnavailable) {
		respondError(w, r, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		respondError(w, r, http.StatusBadGateway, err.Error())
		return
	}
	respondOK(w, r, map[string]string{"answer": answer})
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		respondError(w, r, http.StatusServiceUnavailable, "preset storage not configured")
		return
	}
	presets, err := s.Presets.List()
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(w, r, map[string]any{"presets": presets})
}

func (s *Server) handleSavePreset(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		respondError(w, r, http.StatusServiceUnavailable, "preset storage not configured")
		return
	}
	p, ok := bindParams(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "name")
	if err := s.Presets.Save(name, p); err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(w, r, map[string]string{"name": name})
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		respondError(w, r, http.StatusServiceUnavailable, "preset storage not configured")
		return
	}
	preset, err := s.Presets.Get(chi.URLParam(r, "name"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(w, r, preset)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if s.Presets == nil {
		respondError(w, r, http.StatusServiceUnavailable, "preset storage not configured")
		return
	}
	err := s.Presets.Delete(chi.URLParam(r, "name"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(w, r, map[string]string{"deleted": chi.URLParam(r, "name")})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
