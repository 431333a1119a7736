// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Command quatc evaluates quaternion and vector
// expressions from the command line.
//
// Usage:
//
//	quatc compose 0,0,0.7071,0.7071 1,0,0,0
//	quatc slerp --from 0,0,0,1 --to 0,0,1,0 --t 0.25
//	quatc axis-angle --axis 0,0,1 --angle 1.5708
//	quatc axis-angle --quat 0,0,0.7071,0.7071
//	quatc rotate --quat 0,0,0.7071,0.7071 1,0,0
//	quatc norm 3,4
//
// Tuples are comma-separated lists of numbers.
// Quaternions are written as x,y,z,w.
package main

import "os"

func main() {
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
