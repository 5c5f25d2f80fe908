package query

// State is a step of the query state machine.
type State int

const (
	AwaitingInput State = iota
	ParseFailed
	InputNegative
	ComputingResult
	ResultPrinted
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case ParseFailed:
		return "parse_failed"
	case InputNegative:
		return "input_negative"
	case ComputingResult:
		return "computing_result"
	case ResultPrinted:
		return "result_printed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run ends in s.
func (s State) Terminal() bool {
	return s == ParseFailed || s == InputNegative || s == ResultPrinted
}
