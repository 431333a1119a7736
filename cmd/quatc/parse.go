// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gviegas/mathtuple/linear"
)

// parseTuple parses a comma-separated list of numbers.
// If arities is not empty, the list must have one of
// the given lengths.
// Non-finite numbers are accepted here and rejected by
// the tuple checks.
func parseTuple(s string, arities ...int) ([]float64, error) {
	fields := strings.Split(s, ",")
	t := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("tuple %q: element %d: %w", s, i, err)
		}
		t[i] = x
	}
	if len(arities) == 0 {
		return t, nil
	}
	for _, n := range arities {
		if len(t) == n {
			return t, nil
		}
	}
	return nil, fmt.Errorf("tuple %q: have %d elements, want %s", s, len(t), arityList(arities))
}

func arityList(arities []int) string {
	s := make([]string, len(arities))
	for i, n := range arities {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, " or ")
}

// parseQ parses a quaternion written as x,y,z,w.
func parseQ(s string) (*linear.Q, error) {
	t, err := parseTuple(s, 4)
	if err != nil {
		return nil, err
	}
	return linear.NewQFrom(t), nil
}

// parseV3 parses a 3D vector written as x,y,z.
func parseV3(s string) (v [3]float64, err error) {
	t, err := parseTuple(s, 3)
	if err != nil {
		return
	}
	copy(v[:], t)
	return
}
