package server

import (
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHandleHealth(t *testing.T) {
	s := NewServer(0, nil)
	recorder := httptest.NewRecorder()

	s.handleHealth(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status 'ok', got '%s'", body["status"])
	}
}

func TestHandleScenes_ListsAllVariants(t *testing.T) {
	s := NewServer(0, nil)
	recorder := httptest.NewRecorder()

	s.handleScenes(recorder, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var infos []SceneInfo
	if err := json.NewDecoder(recorder.Body).Decode(&infos); err != nil {
		t.Fatalf("Decoding response: %v", err)
	}
	if len(infos) != 4 {
		t.Fatalf("Expected 4 scene variants, got %d", len(infos))
	}

	byName := make(map[string]SceneInfo)
	for _, info := range infos {
		byName[info.Name] = info
	}
	for _, name := range []string{"box", "sphere", "plasma", "fireball"} {
		if _, ok := byName[name]; !ok {
			t.Errorf("Expected scene %q in listing", name)
		}
	}
	if byName["box"].Volumetric {
		t.Error("Expected box scene to be a surface overlay")
	}
	if !byName["fireball"].Volumetric {
		t.Error("Expected fireball scene to be volumetric")
	}
}

func TestRenderRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*RenderRequest)
		expectError bool
	}{
		{"defaults are valid", func(r *RenderRequest) {}, false},
		{"width too small", func(r *RenderRequest) { r.Width = 8 }, true},
		{"width too large", func(r *RenderRequest) { r.Width = 4000 }, true},
		{"height too small", func(r *RenderRequest) { r.Height = 4 }, true},
		{"negative frames", func(r *RenderRequest) { r.Frames = -1 }, true},
		{"fps too high", func(r *RenderRequest) { r.FPS = 500 }, true},
		{"preview scale too large", func(r *RenderRequest) { r.PreviewScale = 16 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RenderRequest{}
			req.applyDefaults()
			tt.mutate(&req)

			err := req.validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestDownscale(t *testing.T) {
	src := newTestImage(64, 48)

	half := downscale(src, 2)
	if half.Bounds().Dx() != 32 || half.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24, got %v", half.Bounds())
	}

	// Factor larger than the image still yields at least one pixel
	tiny := downscale(src, 100)
	if tiny.Bounds().Dx() != 1 || tiny.Bounds().Dy() != 1 {
		t.Errorf("Expected 1x1, got %v", tiny.Bounds())
	}
}

func TestRenderWebsocket_StreamsFrames(t *testing.T) {
	s := NewServer(0, nil)
	ts := httptest.NewServer(http.HandlerFunc(s.handleRenderWS))
	defer ts.Close()

	conn := dialWS(t, ts.URL)
	defer conn.Close()

	request := RenderRequest{
		Scene:        "box",
		Width:        32,
		Height:       24,
		Frames:       2,
		FPS:          24,
		PreviewScale: 2,
	}
	if err := conn.WriteJSON(request); err != nil {
		t.Fatalf("Sending request: %v", err)
	}

	var frames []FrameUpdate
	complete := false
	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	for !complete {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("Reading message: %v", err)
		}
		switch msg.Type {
		case "frame":
			var frame FrameUpdate
			if err := json.Unmarshal(msg.Data, &frame); err != nil {
				t.Fatalf("Decoding frame: %v", err)
			}
			frames = append(frames, frame)
		case "error":
			t.Fatalf("Unexpected error message: %s", msg.Data)
		case "complete":
			complete = true
		}
	}

	if len(frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(frames))
	}
	for i, frame := range frames {
		if frame.Index != i {
			t.Errorf("Frame %d has index %d", i, frame.Index)
		}
		if frame.ImageData == "" {
			t.Errorf("Frame %d has empty image data", i)
		}
		if frame.Stats.TotalPixels != 32*24 {
			t.Errorf("Frame %d stats cover %d pixels, expected %d",
				i, frame.Stats.TotalPixels, 32*24)
		}
	}
	if !frames[1].IsLast {
		t.Error("Expected the final frame to be marked last")
	}
}

func TestRenderWebsocket_UnknownScene(t *testing.T) {
	s := NewServer(0, nil)
	ts := httptest.NewServer(http.HandlerFunc(s.handleRenderWS))
	defer ts.Close()

	conn := dialWS(t, ts.URL)
	defer conn.Close()

	if err := conn.WriteJSON(RenderRequest{Scene: "nonexistent"}); err != nil {
		t.Fatalf("Sending request: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	var msg WSMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Reading message: %v", err)
	}
	if msg.Type != "error" {
		t.Errorf("Expected error message, got type '%s'", msg.Type)
	}
}

func newTestImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func dialWS(t *testing.T, httpURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(httpURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dialing websocket: %v", err)
	}
	return conn
}
