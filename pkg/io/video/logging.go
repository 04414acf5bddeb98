package video

import "github.com/pion/yuvtransform/internal/logging"

var logger = logging.NewLogger("yuvtransform/video")
