package handlers

import (
	"bytes"
	"math"
	"net/http"
	"strconv"

	"github.com/edututor/backend/internal/painter"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	visualizationSize     = 400
	maxVisualizationSize  = 1600
	maxVisualizationFrame = 3600
	visualizationFPS      = 30.0
)

// SceneSource is the interface that wraps access to the live book scene.
type SceneSource interface {
	// Method Snapshot returns the current projected frame, safe for concurrent readers.
	Snapshot() painter.Frame
}

// SceneHandler handles HTTP requests for rendered decorations and lesson visualizations
type SceneHandler struct {
	BaseHandler
	scene SceneSource
}

// NewSceneHandler creates a new scene handler
func NewSceneHandler(scene SceneSource, logger *zap.Logger) *SceneHandler {
	return &SceneHandler{
		scene:       scene,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers scene routes on a router scoped to /api/v1
func (h *SceneHandler) RegisterRoutes(r chi.Router) {
	r.Get("/scenes/books", h.BooksFrame)
	r.Get("/scenes/books.png", h.BooksImage)
	r.Get("/visualizations/{model}.png", h.Visualization)
}

// BooksFrame handles GET /api/v1/scenes/books
// @Summary Get the floating books display list
// @Description Get the projected faces of every book, painted back to front
// @Tags scenes
// @Produce json
// @Success 200 {object} painter.Frame "Display list"
// @Router /scenes/books [get]
func (h *SceneHandler) BooksFrame(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.scene.Snapshot())
}

// BooksImage handles GET /api/v1/scenes/books.png
// @Summary Render the floating books
// @Tags scenes
// @Produce png
// @Success 200 {file} binary "PNG image"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /scenes/books.png [get]
func (h *SceneHandler) BooksImage(w http.ResponseWriter, r *http.Request) {
	frame := h.scene.Snapshot()

	surface := painter.NewGGSurface(frame.Width, frame.Height)
	painter.Render(surface, frame)
	h.respondPNG(w, surface)
}

// Visualization handles GET /api/v1/visualizations/{model}.png
// @Summary Render a lesson visualization
// @Description Render one frame of a 3D lesson model; unknown models render the orbit
// @Tags scenes
// @Produce png
// @Param model path string true "Model name, e.g. fraction-circles, geometric-shapes, molecular-structure"
// @Param frame query int false "Frame number at 30 fps, default 0"
// @Param zoom query number false "Zoom between 0.5 and 2, default 1"
// @Param rotate query bool false "Rotate the model, default true"
// @Param size query int false "Image width and height in pixels, default 400"
// @Success 200 {file} binary "PNG image"
// @Failure 400 {object} map[string]string "Bad request - invalid query parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /visualizations/{model}.png [get]
func (h *SceneHandler) Visualization(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	frame, err := intParam(q.Get("frame"), 0)
	if err != nil || frame < 0 || frame > maxVisualizationFrame {
		h.respondError(w, http.StatusBadRequest, "frame must be between 0 and "+strconv.Itoa(maxVisualizationFrame))
		return
	}
	size, err := intParam(q.Get("size"), visualizationSize)
	if err != nil || size < 1 || size > maxVisualizationSize {
		h.respondError(w, http.StatusBadRequest, "size must be between 1 and "+strconv.Itoa(maxVisualizationSize))
		return
	}

	viewer := painter.NewViewer(painter.ResolveModel(chi.URLParam(r, "model")))
	if z := q.Get("zoom"); z != "" {
		zoom, err := strconv.ParseFloat(z, 64)
		if err != nil || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
			h.respondError(w, http.StatusBadRequest, "zoom must be a finite number")
			return
		}
		viewer.SetZoom(zoom)
	}
	if q.Get("rotate") == "false" {
		viewer.ToggleRotate()
	}
	for i := 0; i < frame; i++ {
		viewer.Step()
	}

	surface := painter.NewGGSurface(size, size)
	painter.RenderVisualization(surface, viewer.Frame(size, size, float64(frame)/visualizationFPS))
	h.respondPNG(w, surface)
}

func (h *SceneHandler) respondPNG(w http.ResponseWriter, surface *painter.GGSurface) {
	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		h.logger.Error("failed to encode png", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to render image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
