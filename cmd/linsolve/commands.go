// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries flag values and the resolved configuration for one execution
// of the command tree.
type app struct {
	cfgPath  string
	logLevel string

	cfg Config
	log *slog.Logger

	file      string
	method    string
	precision int
	inverse   bool

	funcName   string
	degree     int
	from, to   float64
	partitions int
	points     int
	samples    int
}

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "linsolve",
		Short: "Dense linear systems: Gaussian elimination, LU, products, least-squares fits",
		Long: `linsolve reads square systems A·x = b from YAML files and solves them by
Gaussian elimination or LU decomposition with partial pivoting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML file with default settings")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (default info)")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve every system in a YAML file",
		Args:  cobra.NoArgs,
		RunE:  a.runSolve, // Defined in cmd_solve.go
	}
	solveCmd.Flags().StringVarP(&a.file, "file", "f", "", "system file (required)")
	solveCmd.Flags().StringVar(&a.method, "method", "", "lu or gauss (default lu)")
	solveCmd.Flags().IntVar(&a.precision, "precision", 0, "fractional digits in the output (default 5)")
	_ = solveCmd.MarkFlagRequired("file")

	decomposeCmd := &cobra.Command{
		Use:   "decompose",
		Short: "Print P, L, U and the determinant (optionally the inverse) of every matrix in a YAML file",
		Args:  cobra.NoArgs,
		RunE:  a.runDecompose, // Defined in cmd_solve.go
	}
	decomposeCmd.Flags().StringVarP(&a.file, "file", "f", "", "system file (required)")
	decomposeCmd.Flags().IntVar(&a.precision, "precision", 0, "fractional digits in the output (default 5)")
	decomposeCmd.Flags().BoolVar(&a.inverse, "inverse", false, "also print the inverse matrix")
	_ = decomposeCmd.MarkFlagRequired("file")

	multiplyCmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply the matrices a and b of a YAML file",
		Args:  cobra.NoArgs,
		RunE:  a.runMultiply, // Defined in cmd_multiply.go
	}
	multiplyCmd.Flags().StringVarP(&a.file, "file", "f", "", "product file with keys a and b (required)")
	multiplyCmd.Flags().IntVar(&a.precision, "precision", 0, "fractional digits in the output (default 5)")
	_ = multiplyCmd.MarkFlagRequired("file")

	approxCmd := &cobra.Command{
		Use:   "approx",
		Short: "Fit a least-squares polynomial to a built-in function",
		Args:  cobra.NoArgs,
		RunE:  a.runApprox, // Defined in cmd_approx.go
	}
	approxCmd.Flags().StringVar(&a.funcName, "func", "", "function to fit: "+functionNames())
	approxCmd.Flags().IntVar(&a.degree, "degree", 3, "polynomial degree")
	approxCmd.Flags().Float64Var(&a.from, "from", 0, "left end of the interval")
	approxCmd.Flags().Float64Var(&a.to, "to", 1, "right end of the interval")
	approxCmd.Flags().IntVar(&a.partitions, "partitions", 0, "composite quadrature partitions (default 100)")
	approxCmd.Flags().IntVar(&a.points, "points", 0, "Gauss-Legendre nodes per partition (default 4)")
	approxCmd.Flags().IntVar(&a.samples, "samples", 31, "grid points for the error report")
	_ = approxCmd.MarkFlagRequired("func")

	rootCmd.AddCommand(solveCmd, decomposeCmd, multiplyCmd, approxCmd)

	return rootCmd
}

// setup loads the config file and builds the logger before any subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.log, err = newLogger(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("configuration resolved",
		"config", a.cfgPath, "method", cfg.Method, "precision", cfg.Precision,
		"partitions", cfg.Partitions, "points", cfg.Points)

	return nil
}

// intFlag returns the flag value when it was set on the command line and
// fallback otherwise.
func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}

	return fallback
}
