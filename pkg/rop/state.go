package rop

// ResultState is the discriminant of a Result. The zero value is StateError so
// that a Result built without a factory reads as an error.
type ResultState uint8

const (
	StateError ResultState = iota
	StateOk
)

func (s ResultState) String() string {
	switch s {
	case StateOk:
		return "Ok"
	case StateError:
		return "Error"
	default:
		return "Unrecognized"
	}
}

// OptionState is the discriminant of Option, Dual and Triple. The zero value is
// StateFailed for the same reason as StateError.
type OptionState uint8

const (
	StateFailed OptionState = iota
	StateSuccess
	StateCanceled
)

func (s OptionState) String() string {
	switch s {
	case StateSuccess:
		return "Success"
	case StateFailed:
		return "Failed"
	case StateCanceled:
		return "Canceled"
	default:
		return "Unrecognized"
	}
}

// rank orders states Success > Failed > Canceled.
func (s OptionState) rank() int {
	switch s {
	case StateSuccess:
		return 2
	case StateFailed:
		return 1
	default:
		return 0
	}
}
