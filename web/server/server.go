package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/bpodwinski/go-raymarch/pkg/config"
	"github.com/bpodwinski/go-raymarch/pkg/scene"
)

// Server serves the browser preview: static assets, scene metadata, and a
// websocket endpoint that streams rendered frames.
type Server struct {
	port   int
	tuning *config.Config
}

// NewServer creates a web server using the given scene tuning
func NewServer(port int, tuning *config.Config) *Server {
	if tuning == nil {
		tuning = config.Default()
	}
	return &Server{port: port, tuning: tuning}
}

// Start registers routes and blocks serving HTTP
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/ws/render", s.handleRenderWS)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// SceneInfo describes one scene variant to the client
type SceneInfo struct {
	Name       string             `json:"name"`
	Volumetric bool               `json:"volumetric"`
	Tuning     config.SceneTuning `json:"tuning"`
}

// handleScenes lists the available scene variants with their tuning defaults
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	var infos []SceneInfo
	for _, name := range scene.Names() {
		tuning, err := s.tuning.Scene(name)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		infos = append(infos, SceneInfo{
			Name:       name,
			Volumetric: tuning.DensityThreshold > 0,
			Tuning:     tuning,
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(infos)
}
