package renderer

// RenderStats contains statistics about one rendered frame
type RenderStats struct {
	TotalPixels  int     // Total number of pixels rendered
	TotalSteps   int     // Total march iterations across all pixels
	AverageSteps float64 // Average march iterations per pixel
	MaxStepsUsed int     // Largest step count any pixel needed
	HitPixels    int     // Pixels whose march hit or accumulated density
}

// newRenderStats initializes statistics tracking for a pixel count
func newRenderStats(pixelCount int) RenderStats {
	return RenderStats{TotalPixels: pixelCount}
}

// merge folds a tile's statistics into the frame totals
func (rs *RenderStats) merge(tile RenderStats) {
	rs.TotalSteps += tile.TotalSteps
	rs.HitPixels += tile.HitPixels
	rs.MaxStepsUsed = max(rs.MaxStepsUsed, tile.MaxStepsUsed)
}

// finalize computes the derived statistics after all tiles are merged
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSteps = float64(rs.TotalSteps) / float64(rs.TotalPixels)
	}
}
