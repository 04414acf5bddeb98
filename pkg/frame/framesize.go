package frame

// Return a function to get the number of bytes a frame will occupy in the given format
var FrameSizeMap = map[Format]frameSizeFunc{
	FormatNV12: frameSizeNV12,
	FormatNV21: frameSizeNV12, // NV12 and NV21 have the same frame size
}

type frameSizeFunc func(width, height int) uint

func frameSizeNV12(width, height int) uint {
	yi := lumaSize(width, height)
	ci := yi + chromaSize(width, height)
	return uint(ci)
}
