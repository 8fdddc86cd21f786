/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package backend

import (
	"bennypowers.dev/tokensmith/emit"
	"bennypowers.dev/tokensmith/mangle"
)

// appleHeader is the comment banner shared by the iOS backends.
const appleHeader = `
//
// {{.FileName}}
//

// ` + notice + `

`

// ObjC writes an Objective-C header of #define constants with UIColor
// literals.
func ObjC() emit.Backend {
	return emit.Backend{
		Name:     "objc",
		FileName: "tokens.h",
		Naming:   mangle.Pascal,
		Header: appleHeader + `
#import <Foundation/Foundation.h>
#import <UIKit/UIKit.h>

`,
		Declaration: "#define {{.Name}} {{.Value}}\n",
		Color:       "[UIColor colorWithRed:{{.R}}f green:{{.G}}f blue:{{.B}}f alpha:{{.A}}f]",
		Quoting:     emit.QuoteObjC,
	}
}

// Swift writes static constants on a Tokens enum.
func Swift() emit.Backend {
	return emit.Backend{
		Name:     "swift",
		FileName: "Tokens.swift",
		Naming:   mangle.Camel,
		Header: appleHeader + `import UIKit

public enum Tokens {
`,
		Declaration: "    public static let {{.Name}} = {{.Value}}\n",
		Footer:      "}\n",
		Color:       "UIColor(red: {{.R}}, green: {{.G}}, blue: {{.B}}, alpha: {{.A}})",
		Quoting:     emit.QuoteC,
	}
}
