package server

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/display"
	"github.com/df07/go-phong-raytracer/pkg/encoders"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// handleRender renders a frame and returns it as an encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, fb, stats, ok := s.renderRequest(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := encoders.Encode(&buf, fb.Image(), req.Format); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	setStatsHeaders(w, fb, stats)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("Failed to write image: %v", err)
	}
}

// handleFrame renders a frame and returns the raw RGBA bytes, row-major and
// top-to-bottom, ready for ImageData on a canvas
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	_, fb, stats, ok := s.renderRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(fb.Pix)))
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	setStatsHeaders(w, fb, stats)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(fb.Pix); err != nil {
		log.Printf("Failed to write frame: %v", err)
	}
}

// renderRequest parses the request and renders it. On failure it writes the
// error response and returns ok=false.
func (s *Server) renderRequest(w http.ResponseWriter, r *http.Request) (*RenderRequest, *renderer.FrameBuffer, renderer.RenderStats, bool) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return nil, nil, renderer.RenderStats{}, false
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return nil, nil, renderer.RenderStats{}, false
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height)
	raytracer.SetLogger(s.console.Logger(renderID))
	raytracer.SetIntegrator(integrator.NewPhongIntegrator(integrator.ShadingConfig{
		ApplyLightIntensity: req.Intensity,
	}))

	fb, stats := raytracer.RenderPass()

	if req.Label != "" {
		if err := display.DrawCaption(display.NewFrameDisplay(fb), req.Label); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return nil, nil, renderer.RenderStats{}, false
		}
	}

	return req, fb, stats, true
}

// setStatsHeaders reports the frame size and render statistics
func setStatsHeaders(w http.ResponseWriter, fb *renderer.FrameBuffer, stats renderer.RenderStats) {
	w.Header().Set("X-Frame-Width", strconv.Itoa(fb.Width))
	w.Header().Set("X-Frame-Height", strconv.Itoa(fb.Height))
	w.Header().Set("X-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
}
