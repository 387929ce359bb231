package compressor

// Codec is a compression method.  Compress consumes a complete text buffer and
// produces a complete binary buffer; Decompress reverses it.
//
// Implementations keep no state between calls, so a single value may be used
// repeatedly and from multiple goroutines.
//
// Errors caused by malformed input are reported as *MethodError.
//
type Codec interface {
	Compress(text string) ([]byte, error)
	Decompress(data []byte) (string, error)
}
