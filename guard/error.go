package guard

import (
	"fmt"
	"strings"

	"github.com/typeward/typeward/match"
)

// Header is the first line of every aggregated runtime type error.
const Header = "The following runtime type errors were encountered:"

// SlotError is one failed slot of a call: an argument by name, or the
// return value. Expected and Actual are canonical renderings; Actual is the
// decayed classification of the offending value, never the value itself.
type SlotError struct {
	Name     string
	Return   bool
	Expected string
	Actual   string
	Kind     match.Kind
	Value    any
}

func (s SlotError) Message() string {
	if s.Return {
		return fmt.Sprintf("Return value was not of type %s. Actual type was %s.", s.Expected, s.Actual)
	}
	return fmt.Sprintf("Argument '%s' was not of type %s. Actual type was %s.", s.Name, s.Expected, s.Actual)
}

// RuntimeTypeError aggregates every mismatch of a single call.
type RuntimeTypeError struct {
	Slots []SlotError
}

func (e *RuntimeTypeError) Error() string {
	var b strings.Builder
	b.WriteString(Header)
	for _, s := range e.Slots {
		b.WriteString("\n\t")
		b.WriteString(s.Message())
	}
	return b.String()
}
