package crypto

import "io"

// SetRandReaderForTesting sets the random source used by the default
// provider. This is intended for testing only. Returns a function to
// restore the original reader. Since this package is internal, this
// function cannot be accessed by external code.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randOverride
	randOverride = r
	return func() { randOverride = original }
}
