// Copyright 2022 Gustavo C. Viegas. All rights reserved.

//go:build !lineardebug

package config

const debugTag = false
