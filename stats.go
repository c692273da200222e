package huffpack

// Stats summarizes what Compress would produce for some input.
type Stats struct {
	InputLen      int
	Symbols       int
	MinCodeSize   byte
	MaxCodeSize   byte
	PayloadBits   uint64
	PadBits       int
	HeaderLen     int
	ContainerLen  int
	BitsPerSymbol float64
}

// Analyze runs the compression pipeline on data and reports sizes.
func Analyze(data []byte, opts Options) (Stats, error) {
	c, err := NewContainer(data, opts)
	if err != nil {
		return Stats{}, err
	}
	return c.Stats(len(data)), nil
}

// Stats reports the sizes of this container, given the length of the input
// it was built from.
func (c *Container) Stats(inputLen int) Stats {
	bits := c.BitLen()
	s := Stats{
		InputLen:     inputLen,
		Symbols:      c.Table.Len(),
		MinCodeSize:  c.Table.MinSize(),
		MaxCodeSize:  c.Table.MaxSize(),
		PayloadBits:  bits,
		PadBits:      c.Pad,
		HeaderLen:    len(c.Header()),
		ContainerLen: c.Len(),
	}
	if inputLen != 0 {
		s.BitsPerSymbol = float64(bits) / float64(inputLen)
	}
	return s
}
