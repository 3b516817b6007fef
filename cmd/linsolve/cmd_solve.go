// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	name := a.cfg.Method
	if cmd.Flags().Changed("method") {
		name = a.method
	}
	method, ok := linalg.ParseMethod(name)
	if !ok {
		return fmt.Errorf("unknown method %q (want lu or gauss)", name)
	}
	precision := intFlag(cmd, "precision", a.precision, a.cfg.Precision)

	systems, err := readSystems(a.file)
	if err != nil {
		return err
	}

	// systems are independent: solve them concurrently, report in file order
	results := make([]solveResult, len(systems))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range systems {
		i, s := i, s
		g.Go(func() error {
			a.log.Debug("solving", "system", s.Name, "method", method, "rows", len(s.Matrix))
			results[i].x, results[i].residual, results[i].err = solveSystem(s, method)
			return nil
		})
	}
	// goroutines keep failures in results[i].err and always return nil
	_ = g.Wait()

	out := cmd.OutOrStdout()
	st := newStyles(out)
	failed := 0
	for i, s := range systems {
		fmt.Fprintln(out, st.header.Render("--- "+s.Name+" ---"))
		res := results[i]
		if res.err != nil {
			failed++
			a.log.Error("solve failed", "system", s.Name, "error", res.err)
			fmt.Fprintln(out, st.failure.Render("error: "+res.err.Error()))
			continue
		}
		fmt.Fprintln(out, "x:")
		if err = linalg.FormatVector(out, res.x, precision); err != nil {
			return err
		}
		fmt.Fprintf(out, "residual: %.3e\n", res.residual)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d systems failed", failed, len(systems))
	}

	return nil
}

type solveResult struct {
	x        []float64
	residual float64
	err      error
}

// solveSystem returns x and ‖A·x − b‖∞.
func solveSystem(s systemDoc, method linalg.Method) ([]float64, float64, error) {
	m, err := s.matrix()
	if err != nil {
		return nil, 0, err
	}
	x, err := linalg.Solve(m, s.RHS, linalg.WithMethod(method))
	if err != nil {
		return nil, 0, err
	}
	r, err := linalg.Residual(m, x, s.RHS)
	if err != nil {
		return nil, 0, err
	}

	return x, linalg.NormInf(r), nil
}

func (a *app) runDecompose(cmd *cobra.Command, _ []string) error {
	precision := intFlag(cmd, "precision", a.precision, a.cfg.Precision)
	systems, err := readSystems(a.file)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)
	failed := 0
	for _, s := range systems {
		fmt.Fprintln(out, st.header.Render("--- "+s.Name+" ---"))
		m, err := s.matrix()
		if err == nil {
			err = writeLU(cmd, m, precision, a.inverse)
		}
		if err != nil {
			failed++
			a.log.Error("decompose failed", "system", s.Name, "error", err)
			fmt.Fprintln(out, st.failure.Render("error: "+err.Error()))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d matrices failed", failed, len(systems))
	}

	return nil
}

func writeLU(cmd *cobra.Command, m *linalg.Dense, precision int, inverse bool) error {
	lu, err := linalg.Decompose(m)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "P: %v\n", lu.P)
	fmt.Fprintln(out, "L:")
	if err = linalg.Format(out, lu.L, precision); err != nil {
		return err
	}
	fmt.Fprintln(out, "U:")
	if err = linalg.Format(out, lu.U, precision); err != nil {
		return err
	}
	fmt.Fprintf(out, "det: %.*f\n", precision, lu.Det())
	if !inverse {
		return nil
	}
	inv, err := lu.Inverse()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "inverse:")

	return linalg.Format(out, inv, precision)
}
