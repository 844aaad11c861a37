package toolkit

import "fmt"

// Outcome is the binary result of an operation
type Outcome int

const (
	Finished Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "CANCELLED"
	}
	return "FINISHED"
}

// Result is what every toolkit operation returns: a definite outcome
// plus zero or more human-readable messages. Operations never propagate
// errors; failures surface here.
type Result struct {
	Outcome  Outcome
	Warnings []string
	Infos    []string
}

func finished() Result {
	return Result{Outcome: Finished}
}

func cancelled(format string, args ...any) Result {
	return Result{Outcome: Cancelled, Warnings: []string{fmt.Sprintf(format, args...)}}
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) infof(format string, args ...any) {
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}
