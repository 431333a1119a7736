// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/gviegas/mathtuple/linear"
)

const (
	half  = "0.7071067811865476"
	rotZ  = "0,0," + half + "," + half
	flipZ = "0,0,1,0"
)

func TestCommands(t *testing.T) {
	defer goleak.VerifyNone(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"compose single", []string{"compose", "1,2,3,4"}, "[1, 2, 3, 4]\n"},
		{"compose pair", []string{"compose", rotZ, rotZ}, "[0, 0, 1, 0]\n"},
		{"slerp", []string{"slerp", "--to", flipZ}, "[0, 0, 0.7071, 0.7071]\n"},
		{"slerp from", []string{"slerp", "--from", flipZ, "--to", flipZ, "--t", "0.3"}, "[0, 0, 1, 0]\n"},
		{"axis-angle", []string{"axis-angle", "--axis", "0,0,2", "--angle", "1.5707963267948966"}, "[0, 0, 0.7071, 0.7071]\n"},
		{"axis-angle quat", []string{"axis-angle", "--quat", rotZ}, "[0, 0, 1]\n1.571\n"},
		{"rotate", []string{"rotate", "--quat", flipZ, "1,0,0"}, "[-1, 0, 0]\n"},
		{"norm V2", []string{"norm", "3,4"}, "[0.6, 0.8]\n5\n"},
		{"norm V4", []string{"norm", "0, 0, -3, 0"}, "[0, 0, -1, 0]\n3\n"},
		{"norm zero", []string{"norm", "0,0"}, "[0, 0]\n0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCmd(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"compose no args", []string{"compose"}, "requires at least 1 arg(s)"},
		{"compose arity", []string{"compose", "1,2,3"}, "want 4"},
		{"compose syntax", []string{"compose", "1,2,x,4"}, "element 2"},
		{"slerp no target", []string{"slerp"}, `required flag(s) "to" not set`},
		{"axis-angle no flags", []string{"axis-angle"}, "at least one of the flags"},
		{"axis-angle both", []string{"axis-angle", "--axis", "0,0,1", "--angle", "1", "--quat", rotZ}, "none of the others can be"},
		{"axis-angle no angle", []string{"axis-angle", "--axis", "0,0,1"}, "must all be set"},
		{"rotate no quat", []string{"rotate", "1,0,0"}, `required flag(s) "quat" not set`},
		{"rotate arity", []string{"rotate", "--quat", flipZ, "1,0"}, "want 3"},
		{"norm arity", []string{"norm", "1,2,3"}, "want 2 or 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCommandInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		typ  string
	}{
		{"compose", []string{"compose", "nan,0,0,1"}, "Q"},
		{"slerp", []string{"slerp", "--to", "0,0,inf,1"}, "Q"},
		{"axis-angle", []string{"axis-angle", "--axis", "0,0,1", "--angle", "NaN"}, "number"},
		{"rotate", []string{"rotate", "--quat", flipZ, "1,nan,0"}, "V3"},
		{"norm", []string{"norm", "-inf,1"}, "V2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmd(t, tt.args...)
			require.ErrorIs(t, err, linear.ErrInvalid)
			var e *linear.InvalidError
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.typ, e.Type)
		})
	}
}

func TestCommandUnchecked(t *testing.T) {
	out, _, err := runCmd(t, "--debug=false", "norm", "nan,1")
	require.NoError(t, err)
	assert.Equal(t, "[NaN, NaN]\nNaN\n", out)
	assert.False(t, linear.Debug())
}

func TestParseTuple(t *testing.T) {
	v, err := parseTuple(" 1, -2.5 ,3e2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 300}, v)

	v, err = parseTuple("1,2", 2, 4)
	require.NoError(t, err)
	assert.Len(t, v, 2)

	_, err = parseTuple("")
	require.Error(t, err)

	_, err = parseTuple("1,2,3", 2, 4)
	require.EqualError(t, err, `tuple "1,2,3": have 3 elements, want 2 or 4`)
}
