/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package backend holds the built-in emit backends.
package backend

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/tokensmith/emit"
)

// notice is the do-not-edit line every built-in header carries.
const notice = "Do not edit directly, this file was auto-generated."

var builtins = map[string]func() emit.Backend{
	"objc":       ObjC,
	"swift":      Swift,
	"android":    Android,
	"css":        CSS,
	"scss":       SCSS,
	"typescript": TypeScript,
	"json":       JSON,
	"dts":        DTS,
}

// Names returns the built-in backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtin returns a fresh copy of the named backend.
func Builtin(name string) (emit.Backend, error) {
	mk, ok := builtins[strings.ToLower(name)]
	if !ok {
		return emit.Backend{}, fmt.Errorf("unknown backend %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}
