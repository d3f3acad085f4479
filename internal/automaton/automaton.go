// Package automaton derives SIHA's initial 1024-bit state from a message using a Rule 30-style cellular automaton.
package automaton

const (
	// Width is the width of the automaton in bytes.
	Width = 128

	// Steps is the number of generations evolved from the seeded state.
	Steps = 64
)

// Init returns the initial state for the given message. It panics if input is empty.
func Init(input []byte) [Width]byte {
	var a, b [Width]byte
	Seed(&a, input)
	for range Steps / 2 {
		Step(&b, &a)
		Step(&a, &b)
	}
	return a
}

// Seed fills state with the message repeated cyclically, masked with a length-dependent byte.
func Seed(state *[Width]byte, input []byte) {
	if len(input) == 0 {
		panic("siha: cannot seed automaton with empty input")
	}

	mask := byte(len(input) * 37)
	for i := range state {
		state[i] = input[i%len(input)] ^ mask
	}
}

// Step computes the next generation of src into dst. The edge cells have no neighbor on one side and are always zero
// in the next generation.
func Step(dst, src *[Width]byte) {
	dst[0], dst[Width-1] = 0, 0
	for i := 1; i < Width-1; i++ {
		dst[i] = src[i-1] ^ (src[i] | src[i+1])
	}
}
