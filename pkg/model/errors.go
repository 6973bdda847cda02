// pkg/model/errors.go
package model

import "fmt"

// SchemaError reports a required column missing from the input dataset.
// This is a contract violation by the caller and is never recovered from.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q is missing from the dataset", e.Column)
}

// EmptyColumnError reports statistics requested over a column with zero
// rows, where mean and standard deviation are undefined.
type EmptyColumnError struct {
	Column string
}

func (e *EmptyColumnError) Error() string {
	return fmt.Sprintf("cannot compute statistics for column %q: no rows", e.Column)
}

// InvalidArgumentError reports an argument that violates an operation's
// contract, such as a non-positive topN.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Name, e.Reason)
}
