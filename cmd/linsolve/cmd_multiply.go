// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/spf13/cobra"
)

func (a *app) runMultiply(cmd *cobra.Command, _ []string) error {
	doc, err := readProduct(a.file)
	if err != nil {
		return err
	}
	left, err := linalg.NewDenseFrom(doc.A)
	if err != nil {
		return fmt.Errorf("a: %w", err)
	}
	right, err := linalg.NewDenseFrom(doc.B)
	if err != nil {
		return fmt.Errorf("b: %w", err)
	}
	a.log.Debug("multiplying", "a", fmt.Sprintf("%dx%d", left.Rows(), left.Cols()),
		"b", fmt.Sprintf("%dx%d", right.Rows(), right.Cols()))

	c, err := linalg.Mul(left, right)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "C:")

	return linalg.Format(out, c, intFlag(cmd, "precision", a.precision, a.cfg.Precision))
}
