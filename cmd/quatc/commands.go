// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gviegas/mathtuple/internal/kernel"
	"github.com/gviegas/mathtuple/internal/tuple"
	"github.com/gviegas/mathtuple/linear"
)

// formatV3 renders a 3D vector the way tuples are rendered.
func (a *app) formatV3(v *[3]float64) string { return tuple.Format("V3", v[:], a.options()) }

func (a *app) formatNumber(x float64) string { return tuple.FormatValue(x, a.options().Precision) }

// checkV3 applies the tuple checks to a 3D vector.
func checkV3(v *[3]float64) { tuple.Current().Check("V3", 3, v[:]) }

func newComposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compose q [q...]",
		Short: "Print the Hamilton product of the given quaternions",
		Long: `Multiplies the quaternions from left to right.
The resulting rotation applies the rightmost operand first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: guard(func(cmd *cobra.Command, args []string) error {
			q := linear.NewQ()
			for _, s := range args {
				p, err := parseQ(s)
				if err != nil {
					return err
				}
				q.Mul(p)
			}
			a.log.Debug("Composed quaternions", zap.Int("operands", len(args)), zap.Float64s("result", q[:]))
			fmt.Fprintln(cmd.OutOrStdout(), q.Format(a.options()))
			return nil
		}),
	}
}

func newSlerpCmd(a *app) *cobra.Command {
	var from, to string
	var t float64
	cmd := &cobra.Command{
		Use:   "slerp",
		Short: "Print the spherical interpolation between two rotations",
		Args:  cobra.NoArgs,
		RunE: guard(func(cmd *cobra.Command, args []string) error {
			var start *linear.Q
			if from != "" {
				var err error
				if start, err = parseQ(from); err != nil {
					return err
				}
			}
			target, err := parseQ(to)
			if err != nil {
				return err
			}
			q := new(linear.Q).Slerp(start, target, t)
			fmt.Fprintln(cmd.OutOrStdout(), q.Format(a.options()))
			return nil
		}),
	}
	cmd.Flags().StringVar(&from, "from", "", "start rotation (default is the identity)")
	cmd.Flags().StringVar(&to, "to", "", "target rotation (required)")
	cmd.Flags().Float64Var(&t, "t", 0.5, "interpolation amount")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newAxisAngleCmd(a *app) *cobra.Command {
	var axis, quat string
	var angle float64
	cmd := &cobra.Command{
		Use:   "axis-angle",
		Short: "Convert between axis-angle and quaternion",
		Long: `With --axis and --angle, prints the rotation as a quaternion.
The axis is normalized first.
With --quat, prints the rotation axis and the angle in radians.`,
		Args: cobra.NoArgs,
		RunE: guard(func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if quat != "" {
				q, err := parseQ(quat)
				if err != nil {
					return err
				}
				ax, rad := q.Normalize().AxisAngle()
				fmt.Fprintln(out, a.formatV3(&ax))
				fmt.Fprintln(out, a.formatNumber(rad))
				return nil
			}
			ax, err := parseV3(axis)
			if err != nil {
				return err
			}
			checkV3(&ax)
			kernel.Norm3(&ax, &ax)
			q := new(linear.Q).SetAxisAngle(&ax, tuple.Current().CheckNumber(angle))
			fmt.Fprintln(out, q.Format(a.options()))
			return nil
		}),
	}
	cmd.Flags().StringVar(&axis, "axis", "", "rotation axis as x,y,z")
	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation angle in radians")
	cmd.Flags().StringVar(&quat, "quat", "", "rotation to convert as x,y,z,w")
	cmd.MarkFlagsRequiredTogether("axis", "angle")
	cmd.MarkFlagsMutuallyExclusive("axis", "quat")
	cmd.MarkFlagsOneRequired("axis", "quat")
	return cmd
}

func newRotateCmd(a *app) *cobra.Command {
	var quat string
	cmd := &cobra.Command{
		Use:   "rotate --quat q x,y,z",
		Short: "Print a point rotated by a quaternion",
		Args:  cobra.ExactArgs(1),
		RunE: guard(func(cmd *cobra.Command, args []string) error {
			q, err := parseQ(quat)
			if err != nil {
				return err
			}
			p, err := parseV3(args[0])
			if err != nil {
				return err
			}
			checkV3(&p)
			r := q.Rotate(&p)
			checkV3(&r)
			fmt.Fprintln(cmd.OutOrStdout(), a.formatV3(&r))
			return nil
		}),
	}
	cmd.Flags().StringVar(&quat, "quat", "", "rotation as x,y,z,w (required)")
	_ = cmd.MarkFlagRequired("quat")
	return cmd
}

func newNormCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "norm x,y[,z,w]",
		Short: "Print a normalized vector and its original magnitude",
		Args:  cobra.ExactArgs(1),
		RunE: guard(func(cmd *cobra.Command, args []string) error {
			t, err := parseTuple(args[0], 2, 4)
			if err != nil {
				return err
			}
			var s string
			var m float64
			if len(t) == 2 {
				v := linear.NewV2From(t)
				m = v.Magnitude()
				s = v.Normalize().Format(a.options())
			} else {
				v := linear.NewV4From(t)
				m = v.Magnitude()
				s = v.Normalize().Format(a.options())
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s)
			fmt.Fprintln(out, a.formatNumber(m))
			return nil
		}),
	}
}
