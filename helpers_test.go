package huffpack

import (
	"bytes"
	"math/rand"
)

// corpus returns a fixed set of non-empty inputs.
func corpus() map[string][]byte {
	rng := rand.New(rand.NewSource(42))

	random := make([]byte, 4096)
	rng.Read(random)

	skewed := make([]byte, 10000)
	for i := range skewed {
		// Roughly geometric, so code lengths vary widely.
		n := 0
		for n < 30 && rng.Intn(2) == 0 {
			n++
		}
		skewed[i] = byte('a' + n)
	}

	everyByte := make([]byte, 256)
	for i := range everyByte {
		everyByte[i] = byte(i)
	}

	return map[string][]byte{
		"single":    {0x41},
		"repeated":  bytes.Repeat([]byte{'A'}, 100),
		"two":       []byte("abababababb"),
		"aaabbc":    []byte("aaabbc"),
		"text":      []byte("the quick brown fox jumps over the lazy dog, again and again and again"),
		"zeros":     make([]byte, 17),
		"everyByte": everyByte,
		"random":    random,
		"skewed":    skewed,
	}
}

// fibonacciTable returns a FrequencyTable for n symbols whose counts follow
// the Fibonacci sequence, which yields a tree of depth n-1.
func fibonacciTable(n int) *FrequencyTable {
	ft := &FrequencyTable{}
	a, b := uint64(1), uint64(1)
	for i := 0; i < n; i++ {
		symbol := Symbol(i)
		ft.counts[symbol] = a
		ft.order = append(ft.order, symbol)
		ft.total += a
		a, b = b, a+b
	}
	return ft
}
