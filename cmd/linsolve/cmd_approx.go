// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/linsolve/approx"
	"github.com/katalvlaran/linsolve/quadrature"
	"github.com/spf13/cobra"
)

// functions are the integrands selectable with --func.
var functions = map[string]quadrature.Func{
	"exp": math.Exp,
	"sin": math.Sin,
	"cos": math.Cos,
	"runge": func(x float64) float64 {
		return 1 / (1 + 25*x*x)
	},
	"expcos": func(x float64) float64 {
		return math.Exp(x)*math.Cos(6*x) - x*x*x + 5*x*x - 10
	},
}

func functionNames() string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, ", ")
}

func (a *app) runApprox(cmd *cobra.Command, _ []string) error {
	f, ok := functions[a.funcName]
	if !ok {
		return fmt.Errorf("unknown function %q (want one of %s)", a.funcName, functionNames())
	}
	partitions := intFlag(cmd, "partitions", a.partitions, a.cfg.Partitions)
	points := intFlag(cmd, "points", a.points, a.cfg.Points)
	a.log.Debug("fitting", "func", a.funcName, "degree", a.degree,
		"from", a.from, "to", a.to, "partitions", partitions, "points", points)

	coeffs, err := approx.Polynomial(f, a.degree, a.from, a.to,
		approx.WithPartitions(partitions), approx.WithPoints(points))
	if err != nil {
		return err
	}
	rep, err := approx.Evaluate(f, coeffs, a.from, a.to, a.samples)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, c := range coeffs {
		fmt.Fprintf(out, "a_%d = %.8e\n", i, c)
	}
	fmt.Fprintf(out, "max error: %.6e\n", rep.Max)
	fmt.Fprintf(out, "rms error: %.6e\n", rep.RMS)
	a.log.Info("fit complete", "func", a.funcName, "degree", a.degree, "max_error", rep.Max)

	return nil
}
