package tasks

import "fmt"

// IOError reports that the task document could not be read or written.
type IOError struct {
	Op   string // "read" | "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// CorruptDataError reports a task document that exists but does not parse.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt task file %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// NotFoundError reports that no task matches an ID prefix, or that a resolved
// task disappeared before it could be changed.
type NotFoundError struct {
	Prefix string
}

func (e *NotFoundError) Error() string {
	if e.Prefix == "" {
		return "task not found"
	}
	return fmt.Sprintf("no task found with ID starting with '%s'", e.Prefix)
}

// AmbiguousError reports an ID prefix shared by more than one task.
type AmbiguousError struct {
	Prefix string
	Count  int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous ID '%s' matches %d tasks", e.Prefix, e.Count)
}

// InvalidPriorityError reports an unknown priority token.
type InvalidPriorityError struct {
	Value string
}

func (e *InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %q (want low, medium or high)", e.Value)
}
