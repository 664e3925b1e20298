package svg2png

import "fmt"

// ConversionError reports the conversion which stopped the batch.
type ConversionError struct {
	Index  int // position of Input in the batch, starting at 0
	Input  string
	Output string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s to %s: %v", e.Input, e.Output, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
