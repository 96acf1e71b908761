package gfx

import (
	"fmt"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Resource is a GPU object with an explicit lifetime.
type Resource interface {
	// Startup allocates the GPU side of the resource.
	Startup() error

	// Shutdown releases it.
	Shutdown() error
}

type namer interface {
	Name() string
}

// describe returns a log friendly name for r.
func describe(r Resource) string {
	if n, ok := r.(namer); ok {
		return fmt.Sprintf("%T(%s)", r, n.Name())
	}
	return fmt.Sprintf("%T", r)
}

// Resources is an ordered list of resources sharing one lifetime.
type Resources []Resource

// Add appends the given resources.
func (rs *Resources) Add(r ...Resource) {
	*rs = append(*rs, r...)
}

// Startup starts every resource in order. It returns all failures as one
// ErrorSet; resources after a failing one are still started.
func (rs Resources) Startup() error {
	var errorset ErrorSet

	for _, r := range rs {
		log.Println(describe(r), "startup")
		if err := r.Startup(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", describe(r)))
		}
	}

	if errorset.Len() == 0 {
		return nil
	}

	return errorset
}

// Shutdown shuts every resource down in reverse order.
func (rs Resources) Shutdown() error {
	var errorset ErrorSet

	for i := len(rs) - 1; i >= 0; i-- {
		log.Println(describe(rs[i]), "shutdown")
		if err := rs[i].Shutdown(); err != nil {
			errorset.Append(errors.Wrapf(err, "%s", describe(rs[i])))
		}
	}

	if errorset.Len() == 0 {
		return nil
	}

	return errorset
}

// ErrorSet defines a list of one or more errors and is itself an error.
type ErrorSet []error

func (e ErrorSet) Len() int {
	return len(e)
}

func (e *ErrorSet) Append(args ...error) {
	*e = append(*e, args...)
}

func (e ErrorSet) Error() string {
	var sb strings.Builder
	for _, err := range e {
		sb.WriteString(err.Error() + "\n")
	}
	return sb.String()
}
