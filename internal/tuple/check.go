// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package tuple

import (
	"errors"
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/gviegas/mathtuple/config"
)

// ErrInvalid is the error wrapped by every InvalidError.
var ErrInvalid = errors.New("linear: invalid tuple")

// InvalidError is the panic value of a failed check.
// Type names the tuple type ("V2", "Q", ...), or is
// "number" for a rejected scalar.
type InvalidError struct {
	Type   string
	Values []float64
}

func (e *InvalidError) Error() string { return "linear: invalid " + e.Type }

func (e *InvalidError) Unwrap() error { return ErrInvalid }

// Options controls Format.
type Options struct {
	PrintTypes bool
	Precision  int
}

// Checker validates tuples after mutation.
// It is immutable once created.
type Checker struct {
	debug bool
	eps   float64
	opts  Options
	log   *zap.Logger
}

// NewChecker creates a checker from cfg.
// A nil log is replaced by a no-op logger.
func NewChecker(cfg config.TupleConfig, log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	prec := cfg.Precision
	if prec < 1 {
		prec = config.DefaultPrecision
	}
	return &Checker{
		debug: cfg.Debug,
		eps:   cfg.Epsilon,
		opts:  Options{PrintTypes: cfg.PrintTypes, Precision: prec},
		log:   log,
	}
}

// Debug reports whether checks are enabled.
func (c *Checker) Debug() bool { return c.debug }

// Epsilon returns the tolerance of approximate equality.
func (c *Checker) Epsilon() float64 { return c.eps }

// Options returns the formatting options.
func (c *Checker) Options() Options { return c.opts }

// Check panics with an *InvalidError if checks are
// enabled and s is not a valid tuple of arity n.
func (c *Checker) Check(name string, n int, s []float64) {
	if !c.debug || Valid(s, n) {
		return
	}
	c.log.Debug("invalid tuple", zap.String("type", name), zap.Float64s("values", s))
	panic(&InvalidError{Type: name, Values: append([]float64(nil), s...)})
}

// CheckNumber panics with an *InvalidError if checks
// are enabled and f is not finite. It returns f.
func (c *Checker) CheckNumber(f float64) float64 {
	if c.debug && !finite(f) {
		c.log.Debug("invalid number", zap.Float64("value", f))
		panic(&InvalidError{Type: "number", Values: []float64{f}})
	}
	return f
}

var current atomic.Pointer[Checker]

func init() { current.Store(NewChecker(config.DefaultTuple(), nil)) }

// Install replaces the checker used by Current.
// It is meant to be called at startup or in test setup.
func Install(c *Checker) {
	if c == nil {
		c = NewChecker(config.DefaultTuple(), nil)
	}
	current.Store(c)
}

// Current returns the installed checker.
func Current() *Checker { return current.Load() }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
