package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	xdraw "golang.org/x/image/draw"

	"github.com/bpodwinski/go-raymarch/pkg/renderer"
	"github.com/bpodwinski/go-raymarch/pkg/scene"
)

// RenderRequest is the first client message on the render websocket
type RenderRequest struct {
	Scene        string  `json:"scene"`        // Scene variant name (e.g. "fireball")
	Width        int     `json:"width"`        // Image width in pixels
	Height       int     `json:"height"`       // Image height in pixels
	Frames       int     `json:"frames"`       // Number of frames to stream
	FPS          float64 `json:"fps"`          // Scene-time frames per second
	Start        float64 `json:"start"`        // Scene time of the first frame
	PreviewScale int     `json:"previewScale"` // Downscale factor for streamed frames (1 = full size)
}

// FrameUpdate carries one rendered frame to the client
type FrameUpdate struct {
	Index     int                  `json:"index"`
	Time      float64              `json:"time"`
	ImageData string               `json:"imageData"` // Base64 encoded PNG
	Stats     renderer.RenderStats `json:"stats"`
	IsLast    bool                 `json:"isLast"`
	ElapsedMs int64                `json:"elapsedMs"`
}

// WSMessage is the envelope for all server-to-client websocket messages
type WSMessage struct {
	Type string          `json:"type"` // "console", "frame", "error", "complete"
	Data json.RawMessage `json:"data"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 16,
	// The preview page is served from the same process; skip origin checks
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (req *RenderRequest) applyDefaults() {
	if req.Scene == "" {
		req.Scene = "fireball"
	}
	if req.Width == 0 {
		req.Width = 400
	}
	if req.Height == 0 {
		req.Height = 300
	}
	if req.Frames == 0 {
		req.Frames = 1
	}
	if req.FPS == 0 {
		req.FPS = 24
	}
	if req.PreviewScale == 0 {
		req.PreviewScale = 1
	}
}

func (req *RenderRequest) validate() error {
	if req.Width < 16 || req.Width > 2000 {
		return fmt.Errorf("width must be between 16 and 2000, got: %d", req.Width)
	}
	if req.Height < 16 || req.Height > 2000 {
		return fmt.Errorf("height must be between 16 and 2000, got: %d", req.Height)
	}
	if req.Frames < 1 || req.Frames > 10000 {
		return fmt.Errorf("frames must be between 1 and 10000, got: %d", req.Frames)
	}
	if req.FPS < 1 || req.FPS > 120 {
		return fmt.Errorf("fps must be between 1 and 120, got: %f", req.FPS)
	}
	if req.PreviewScale < 1 || req.PreviewScale > 8 {
		return fmt.Errorf("previewScale must be between 1 and 8, got: %d", req.PreviewScale)
	}
	return nil
}

// handleRenderWS streams rendered frames over a websocket. The client sends a
// single RenderRequest, then receives console, frame, and completion messages
// until the sequence finishes or the connection drops.
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req RenderRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("Reading render request: %v", err)
		return
	}
	req.applyDefaults()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Single writer goroutine: websocket connections do not support
	// concurrent writes
	msgChan := make(chan WSMessage, 64)
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for msg := range msgChan {
			if err := conn.WriteJSON(msg); err != nil {
				cancel()
			}
		}
	}()

	// Stop the console forwarder before closing the message channel so
	// nothing sends on it after close
	var consoleWG sync.WaitGroup
	defer func() {
		cancel()
		consoleWG.Wait()
		close(msgChan)
		<-writeDone
	}()

	// The client sends nothing after the request; a read error means it
	// went away, so cancel the render
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	if err := req.validate(); err != nil {
		sendWSError(msgChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	selected, err := scene.CreateScene(req.Scene, s.tuning)
	if err != nil {
		sendWSError(msgChan, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	consoleChan := make(chan ConsoleMessage, 50)
	consoleWG.Add(1)
	go func() {
		defer consoleWG.Done()
		forwardConsole(ctx, consoleChan, msgChan)
	}()

	rend := renderer.NewRenderer(selected, req.Width, req.Height,
		renderer.DefaultConfig(), NewWebLogger(renderID, consoleChan))

	startTime := time.Now()
	frameChan, errChan := rend.RenderSequence(ctx, req.Start, 1.0/req.FPS, req.Frames)

	for frame := range frameChan {
		img := image.Image(frame.Image)
		if req.PreviewScale > 1 {
			img = downscale(frame.Image, req.PreviewScale)
		}

		imageData, err := imageToBase64PNG(img)
		if err != nil {
			sendWSError(msgChan, fmt.Sprintf("Encoding frame %d: %v", frame.Index, err))
			return
		}

		sendWSMessage(msgChan, "frame", FrameUpdate{
			Index:     frame.Index,
			Time:      frame.Time,
			ImageData: imageData,
			Stats:     frame.Stats,
			IsLast:    frame.IsLast,
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	}

	if err := <-errChan; err != nil {
		sendWSError(msgChan, fmt.Sprintf("Render error: %v", err))
		return
	}

	sendWSMessage(msgChan, "complete", "Rendering completed")
}

// forwardConsole relays render log messages to the websocket writer
func forwardConsole(ctx context.Context, consoleChan <-chan ConsoleMessage, msgChan chan<- WSMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-consoleChan:
			sendWSMessage(msgChan, "console", msg)
		}
	}
}

func sendWSMessage(msgChan chan<- WSMessage, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Marshaling %s message: %v", msgType, err)
		return
	}
	// The writer goroutine drains the channel until it is closed, even after
	// a failed write, so this send cannot deadlock
	msgChan <- WSMessage{Type: msgType, Data: data}
}

func sendWSError(msgChan chan<- WSMessage, message string) {
	sendWSMessage(msgChan, "error", message)
}

// downscale shrinks a frame by an integer factor for cheaper preview streaming
func downscale(img *image.RGBA, scale int) *image.RGBA {
	bounds := img.Bounds()
	w := bounds.Dx() / scale
	if w < 1 {
		w = 1
	}
	h := bounds.Dy() / scale
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
