package counter

import "fmt"

// Kind tags a DisplayState.
type Kind int

const (
	// KindIdle is the state before the first cycle renders anything.
	KindIdle Kind = iota
	KindLoading
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DisplayState is what the region currently shows. Count is meaningful only
// for KindSuccess and Message only for KindError.
type DisplayState struct {
	Kind    Kind
	Count   int64
	Message string
}

// Loading returns the state shown while a request is outstanding.
func Loading() DisplayState {
	return DisplayState{Kind: KindLoading}
}

// Success returns the state showing count, which must not be negative.
func Success(count int64) DisplayState {
	return DisplayState{Kind: KindSuccess, Count: count}
}

// Failure returns the error state showing message to the visitor.
func Failure(message string) DisplayState {
	return DisplayState{Kind: KindError, Message: message}
}

func (s DisplayState) String() string {
	switch s.Kind {
	case KindSuccess:
		return fmt.Sprintf("success(%d)", s.Count)
	case KindError:
		return fmt.Sprintf("error(%q)", s.Message)
	default:
		return s.Kind.String()
	}
}
