// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements fixed-arity vectors and
// quaternions of float64.
//
// Mutating methods modify the receiver in place and
// return it, so calls can be chained:
//
//	v := linear.NewV2(3, 4)
//	v.Normalize().Scale(2)
//
// When checks are enabled (see Configure), every mutating
// method verifies that the receiver holds only finite
// numbers and panics with an *InvalidError otherwise.
// Checks are enabled by default in test binaries and when
// building with the lineardebug tag.
package linear

import (
	"go.uber.org/zap"

	"github.com/gviegas/mathtuple/config"
	"github.com/gviegas/mathtuple/internal/tuple"
)

// ErrInvalid is wrapped by every InvalidError.
var ErrInvalid = tuple.ErrInvalid

// InvalidError is the panic value of a failed check.
type InvalidError = tuple.InvalidError

// Options controls Format.
type Options = tuple.Options

// Configure sets the checks and formatting used by all
// tuples. It should be called once, before tuples are
// used. A nil log disables logging of failed checks.
func Configure(cfg config.TupleConfig, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	tuple.Install(tuple.NewChecker(cfg, log))
	return nil
}

// Debug reports whether checks are enabled.
func Debug() bool { return tuple.Current().Debug() }

// CurrentOptions returns the options used by String.
func CurrentOptions() Options { return tuple.Current().Options() }

func check(name string, n int, s []float64) { tuple.Current().Check(name, n, s) }

func checkNumber(f float64) float64 { return tuple.Current().CheckNumber(f) }

func equal(a, b []float64) bool { return tuple.Equal(a, b, tuple.Current().Epsilon()) }
