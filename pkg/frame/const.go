package frame

type Format string

const (
	// FormatNV12 https://www.fourcc.org/pixel-format/yuv-nv12/
	FormatNV12 Format = "NV12"
	// FormatNV21 https://www.fourcc.org/pixel-format/yuv-nv21/
	// Same as NV12 with V and U swapped in each chroma pair.
	FormatNV21 Format = "NV21"
)
