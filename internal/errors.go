package folio_errors

import "fmt"

// ErrShapeMismatch is returned when a weight vector does not line up
// with the assets it is supposed to describe. Fatal to the call.
type ErrShapeMismatch struct {
	Weights int
	Assets  int
}

func (e ErrShapeMismatch) Error() string {
	return fmt.Sprintf("weight vector has %d entries but price table has %d assets", e.Weights, e.Assets)
}

// ErrInsufficientData is returned when fewer usable aligned
// observations remain than the calculation needs to be stable.
type ErrInsufficientData struct {
	Available int
	Required  int
}

func (e ErrInsufficientData) Error() string {
	return fmt.Sprintf("insufficient data: %d aligned observations available, %d required", e.Available, e.Required)
}
