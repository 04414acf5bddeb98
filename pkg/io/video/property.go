package video

// Property represents a video's basic properties
type Property struct {
	Width, Height int
	FrameRate     float32
}
