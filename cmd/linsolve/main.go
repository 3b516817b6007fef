// SPDX-License-Identifier: MIT

// Command linsolve solves dense linear systems, prints LU factorizations and
// matrix products read from YAML files, and fits least-squares polynomials.
//
//	linsolve solve -f tasks.yaml --method gauss --precision 6
//	linsolve decompose -f tasks.yaml
//	linsolve multiply -f product.yaml
//	linsolve approx --func exp --degree 5 --from 0 --to 1
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "linsolve:", err)
		os.Exit(1)
	}
}
