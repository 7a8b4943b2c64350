package renderer

import (
	"context"
	"image"
	"time"
)

// FrameResult contains one rendered frame of a sequence
type FrameResult struct {
	Index  int
	Time   float64 // Elapsed scene time for this frame
	Image  *image.RGBA
	Stats  RenderStats
	IsLast bool
}

// RenderSequence renders a series of frames with advancing elapsed time,
// delivered over a channel so callers can stream them as they complete.
// Rendering stops early when the context is cancelled; the error channel
// reports the cancellation.
func (r *Renderer) RenderSequence(ctx context.Context, start, step float64, frames int) (<-chan FrameResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(frameChan)
		defer close(errChan)

		r.logger.Printf("Rendering %d frames starting at t=%.2fs...\n", frames, start)

		for i := 0; i < frames; i++ {
			// Check for client disconnect before starting the frame
			select {
			case <-ctx.Done():
				r.logger.Printf("Rendering cancelled before frame %d\n", i)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()
			sceneTime := start + float64(i)*step
			img, stats := r.RenderFrame(sceneTime)

			r.logger.Printf("Frame %d (t=%.2fs) completed in %v (%.1f avg steps/pixel)\n",
				i, sceneTime, time.Since(startTime), stats.AverageSteps)

			result := FrameResult{
				Index:  i,
				Time:   sceneTime,
				Image:  img,
				Stats:  stats,
				IsLast: i == frames-1,
			}

			select {
			case frameChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return frameChan, errChan
}
