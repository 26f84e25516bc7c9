package vars

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a variable name with no binding.
	ErrNotFound = errors.New("variable not found")
	// ErrNotRandom reports a random-variable operation against a Variable
	// that is not Random-scoped or has no distribution attached.
	ErrNotRandom = errors.New("variable not random")
	// ErrRandomTarget reports a direct value assignment to a Random-scoped
	// Variable; random variables are configured through their distribution
	// parameters instead.
	ErrRandomTarget = errors.New("cannot assign value to random variable")
	// ErrRedefined reports a random-variable definition over a name already
	// in use.
	ErrRedefined = errors.New("variable name already in use")
	// ErrNoDistribution reports that no distribution implementation has been
	// registered (vars/randdist not linked in and no factory supplied).
	ErrNoDistribution = errors.New("no random distribution factory registered")
)

// FatalReferenceError reports that attribute reference construction exhausted
// every fallback strategy. An unbindable $name reference inside a loaded
// model is a model-authoring defect; the model-construction driver receiving
// this error is expected to terminate the run.
type FatalReferenceError struct {
	Name string
	Err  error
}

func (e *FatalReferenceError) Error() string {
	return fmt.Sprintf("invalid variable $%s: %v", e.Name, e.Err)
}

func (e *FatalReferenceError) Unwrap() error { return e.Err }
