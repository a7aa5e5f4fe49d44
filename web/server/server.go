package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Size limits for web renders
const (
	minImageSize = 1
	maxImageSize = 2000
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server serving scene files from scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/render", s.handleRenderPNG)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		log.Printf("Error listing scenes: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to list scenes")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the recommended render settings for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := loaders.LoadScene(sceneName, s.scenesDir)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := renderer.RenderConfigForScene(sceneObj)
	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":      config.Width,
			"height":     config.Height,
			"sampler":    config.Sampler,
			"gridX":      config.GridX,
			"gridY":      config.GridY,
			"variance":   config.Variance,
			"maxSamples": config.MaxSamples,
			"maxDepth":   sceneObj.MaxDepth,
		},
		"limits": map[string]interface{}{
			"width":      map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":     map[string]int{"min": minImageSize, "max": maxImageSize},
			"grid":       map[string]int{"min": 1, "max": 16},
			"maxSamples": map[string]int{"min": 1, "max": 10000},
			"variance":   map[string]float64{"min": 1e-6, "max": 1},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
