package pipeline

import "fmt"

// PrerequisiteMissingError reports a stage invoked before its input
// document exists. It is fatal to that stage invocation only.
type PrerequisiteMissingError struct {
	Document string
	Hint     string
}

func (e *PrerequisiteMissingError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Document, e.Hint)
}
