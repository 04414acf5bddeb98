package video

import (
	"fmt"
	"time"

	"github.com/pion/yuvtransform/pkg/frame"
)

// Throttle returns video throttling transform.
// This transform drops some of the incoming frames to achieve given framerate in fps.
// A non-positive rate makes every Read fail without touching the source.
func Throttle(rate float32) TransformFunc {
	return func(r Reader) Reader {
		if rate <= 0 {
			err := fmt.Errorf("throttle: frame rate must be positive, got %v", rate)
			return ReaderFunc(func() (*frame.Frame, error) {
				return nil, err
			})
		}

		ticker := time.NewTicker(time.Duration(int64(float64(time.Second) / float64(rate))))
		return ReaderFunc(func() (*frame.Frame, error) {
			var dropped int
			for {
				f, err := r.Read()
				if err != nil {
					ticker.Stop()
					return nil, err
				}
				select {
				case <-ticker.C:
					if dropped > 0 {
						logger.Tracef("throttle dropped %d frames", dropped)
					}
					return f, nil
				default:
					dropped++
				}
			}
		})
	}
}
