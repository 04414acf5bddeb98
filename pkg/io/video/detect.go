package video

import (
	"time"

	"github.com/pion/yuvtransform/pkg/frame"
)

// DetectChanges will detect frame and video property changes. For video property detection,
// since it's time related, interval will be used to determine the sample rate.
func DetectChanges(interval time.Duration, onChange func(Property)) TransformFunc {
	return func(r Reader) Reader {
		var currentProp Property
		var lastTaken time.Time
		var frames uint
		return ReaderFunc(func() (*frame.Frame, error) {
			var dirty bool

			f, err := r.Read()
			if err != nil {
				return nil, err
			}

			if currentProp.Width != f.Width {
				currentProp.Width = f.Width
				dirty = true
			}

			if currentProp.Height != f.Height {
				currentProp.Height = f.Height
				dirty = true
			}

			now := time.Now()
			elapsed := now.Sub(lastTaken)
			if elapsed >= interval {
				fps := float32(float64(frames) / elapsed.Seconds())
				currentProp.FrameRate = fps
				frames = 0
				lastTaken = now
				dirty = true
			}

			if dirty {
				logger.Debugf("video property changed: %dx%d@%.2f", currentProp.Width, currentProp.Height, currentProp.FrameRate)
				onChange(currentProp)
			}

			frames++
			return f, nil
		})
	}
}
