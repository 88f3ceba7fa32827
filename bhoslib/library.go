// SPDX-License-Identifier: MIT
// File: library.go
// Role: Instance loading on top of resource.Loader and the dimacs decoder.

package bhoslib

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/dimacsbench/core"
	"github.com/katalvlaran/dimacsbench/dimacs"
	"github.com/katalvlaran/dimacsbench/resource"
)

var (
	// ErrUnknownFamily reports a family outside the published set.
	ErrUnknownFamily = errors.New("bhoslib: unknown family")

	// ErrInvalidInstance reports an instance number below 1.
	ErrInvalidInstance = errors.New("bhoslib: invalid instance")

	// ErrFamilyMismatch reports a decoded instance whose node count is not
	// Variables·Domain.
	ErrFamilyMismatch = errors.New("bhoslib: instance does not match family size")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// request is the validated lookup key.
type request struct {
	Family   Family `validate:"required"`
	Instance int    `validate:"min=1"`
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger for load events and decoder diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(lib *Library) { lib.log = l }
}

// WithDecodeOptions appends options passed to every dimacs decode.
func WithDecodeOptions(opts ...dimacs.Option) Option {
	return func(lib *Library) { lib.decodeOpts = append(lib.decodeOpts, opts...) }
}

// Library serves BHOSLIB instances from a loader rooted above "bhoslib/".
// It holds no mutable state after construction and is safe for concurrent use
// when its loader is.
type Library struct {
	loader     resource.Loader
	log        zerolog.Logger
	decodeOpts []dimacs.Option
}

// New returns a Library reading through loader.
func New(loader resource.Loader, opts ...Option) *Library {
	lib := &Library{loader: loader, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(lib)
	}

	return lib
}

// MaximumIndependentSet decodes instance of family f. The largest
// independent set of the result has f.SolutionSize() nodes.
//
// Errors:
//   - ErrUnknownFamily, ErrInvalidInstance: bad arguments.
//   - resource.ErrNotFound: the instance file does not exist (unwrapped
//     loader error; e.g. instance 6 of a five-instance family).
//   - any dimacs decode error, prefixed with the filename.
//   - ErrFamilyMismatch: the file decodes to the wrong node count.
func (l *Library) MaximumIndependentSet(f Family, instance int) (*core.Graph, error) {
	if err := check(f, instance); err != nil {
		return nil, err
	}

	opts := append([]dimacs.Option{dimacs.WithLogger(l.log)}, l.decodeOpts...)
	g, err := dimacs.Decode(l.loader, f.Location(), f.Filename(instance), opts...)
	if err != nil {
		return nil, err
	}
	if g.NodeCount() != f.Nodes() {
		return nil, fmt.Errorf("%s: %d nodes, want %d: %w",
			f.Filename(instance), g.NodeCount(), f.Nodes(), ErrFamilyMismatch)
	}
	l.log.Debug().
		Str("family", f.Name()).
		Int("instance", instance).
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("bhoslib instance loaded")

	return g, nil
}

// MaximumClique returns the complement of the independent-set instance, whose
// maximum clique is the planted solution.
func (l *Library) MaximumClique(f Family, instance int) (*core.Graph, error) {
	g, err := l.MaximumIndependentSet(f, instance)
	if err != nil {
		return nil, err
	}

	return g.Complement(), nil
}

// check validates the lookup key.
func check(f Family, instance int) error {
	if err := validate.Struct(request{Family: f, Instance: instance}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.StructField() == "Instance" {
					return fmt.Errorf("instance %d: %w", instance, ErrInvalidInstance)
				}
			}
		}
		return fmt.Errorf("%s: %w", f.Name(), ErrUnknownFamily)
	}
	if !f.known() {
		return fmt.Errorf("%s: %w", f.Name(), ErrUnknownFamily)
	}

	return nil
}
