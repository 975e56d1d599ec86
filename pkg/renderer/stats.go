package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int     // Total number of pixels rendered
	TotalSamples    int     // Total number of rays traced from the camera
	AverageSamples  float64 // Average samples per pixel
	Chunks          int     // Number of row chunks rendered
	NumWorkers      int     // Number of workers that took part
	ChunksPerWorker []int   // Chunks claimed by each worker; depends on scheduling
}

// Merge returns the sum of two sets of counters
func (s RenderStats) Merge(other RenderStats) RenderStats {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.Chunks += other.Chunks
	return s
}

// finalize calculates derived statistics after all chunks are rendered
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}
