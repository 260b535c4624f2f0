package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/encoders"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// Frame size limits for render and inspect requests
const (
	minFrameSize = 1
	maxFrameSize = 2000
	maxLabelLen  = 64
)

//go:embed static
var staticFiles embed.FS

// Server handles web requests for the raytracer
type Server struct {
	port    int
	console *Console
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:    port,
		console: NewConsole(100),
	}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string          `json:"scene"`     // Scene ID (e.g., "default", "shadow")
	Width     int             `json:"width"`     // Image width, 0 = scene default
	Height    int             `json:"height"`    // Image height, 0 = scene default
	Format    encoders.Format `json:"format"`    // Encoded image format
	Label     string          `json:"label"`     // Caption drawn onto the frame
	Intensity bool            `json:"intensity"` // Scale lighting by light intensity
	Orient    bool            `json:"orient"`    // Aim the camera at its look-at point
}

// Handler returns the HTTP handler serving the page and API endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("/", http.FileServer(http.FS(static)))

	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/frame", s.handleFrame)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting web server on http://localhost%s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		log.Printf("Web server stopped")
		return nil
	})

	return g.Wait()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the registered scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListAllScenes())
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": s.console.Recent()})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: encoders.FormatPNG}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minFrameSize, maxFrameSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minFrameSize, maxFrameSize); err != nil {
		return nil, err
	}
	if format := query.Get("format"); format != "" {
		if req.Format, err = encoders.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	if req.Intensity, err = parseBoolParam(query, "intensity"); err != nil {
		return nil, err
	}
	if req.Orient, err = parseBoolParam(query, "orient"); err != nil {
		return nil, err
	}

	req.Label = query.Get("label")
	if len(req.Label) > maxLabelLen {
		return nil, fmt.Errorf("label must be at most %d bytes", maxLabelLen)
	}

	return req, nil
}

// createScene builds the requested scene and resolves the frame size
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, err
	}

	if req.Orient {
		sceneObj.Camera.OrientToLookAt = true
	}
	if req.Width == 0 {
		req.Width = sceneObj.Width
	}
	if req.Height == 0 {
		req.Height = sceneObj.Height
	}

	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses an optional boolean parameter; absent means false
func parseBoolParam(values url.Values, key string) (bool, error) {
	value := values.Get(key)
	if value == "" {
		return false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s", key, value)
	}
	return parsed, nil
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

// writeJSONError writes {"error": message}
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
