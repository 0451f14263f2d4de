// SPDX-License-Identifier: MIT

// Command indoornav narrates indoor walks on the built-in fixture maps or a
// map described in YAML.
//
//	indoornav route F J
//	indoornav route C A --start-level 1 --format json
//	indoornav levels 2
//	indoornav locate z --map levels
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
