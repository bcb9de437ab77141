/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/gopoly/InputParameters"
	"github.com/notargets/gopoly/types"
)

// RuleCmd prints a Gauss, Gauss-Radau or Gauss-Lobatto rule
var RuleCmd = &cobra.Command{
	Use:   "rule",
	Short: "Print the nodes and weights of a quadrature rule",
	Long: `
Prints the N point Gauss rule of a polynomial family, or the Gauss-Radau rule with
a node fixed at --left, or the Gauss-Lobatto rule with nodes at --left and --right.

gopoly rule -f legendre -N 5 --type lobatto`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger *zap.Logger
			ip     = InputParameters.NewInputParameters1D()
			qr     types.QuadratureRule
		)
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return
		}
		if logger, err = newLogger(cmd); err != nil {
			return
		}
		defer logger.Sync()
		for _, name := range []string{"family", "nodes", "alpha", "beta", "rho", "type", "left", "right", "precision", "table"} {
			flagFields[name](ip)
		}
		ip.K = 1
		if err = ip.Validate(); err != nil {
			logger.Error("bad parameters", zap.Error(err))
			return
		}
		if _, qr, err = buildRule(ip); err != nil {
			logger.Error("rule failed",
				zap.String("family", ip.Family), zap.String("type", ip.RuleType),
				zap.Int("N", ip.N), zap.Error(err))
			return
		}
		return printRule(cmd.OutOrStdout(), qr, ip.Precision)
	},
}

func init() {
	rootCmd.AddCommand(RuleCmd)
	addRuleFlags(RuleCmd, 5)
}

func printRule(w io.Writer, qr types.QuadratureRule, precision int) (err error) {
	if _, err = fmt.Fprintf(w, "%4s %*s %*s\n", "i", precision+8, "x_i", precision+8, "w_i"); err != nil {
		return
	}
	for i := 0; i < qr.Len(); i++ {
		if _, err = fmt.Fprintf(w, "%4d %*.*g %*.*g\n", i,
			precision+8, precision, qr.X[i], precision+8, precision, qr.W[i]); err != nil {
			return
		}
	}
	return
}
