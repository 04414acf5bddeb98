package frame

// sequence returns a frame where Y[i] = i and UV[i] = i+128, both mod 256.
func sequence(width, height int) *Frame {
	f := solid(width, height, 0, 0, 0)
	for i := range f.Y {
		f.Y[i] = uint8(i)
	}
	for i := range f.UV {
		f.UV[i] = uint8(i + 128)
	}
	return f
}

func solid(width, height int, y, u, v uint8) *Frame {
	f := &Frame{
		Y:      make([]uint8, width*height),
		UV:     make([]uint8, width*height/2),
		Width:  width,
		Height: height,
	}
	for i := range f.Y {
		f.Y[i] = y
	}
	for i := 0; i < len(f.UV); i += 2 {
		f.UV[i] = u
		f.UV[i+1] = v
	}
	return f
}
