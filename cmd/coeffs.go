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

	"github.com/notargets/gopoly/families"
	"github.com/notargets/gopoly/types"
)

// CoeffsCmd prints the recurrence table of a family
var CoeffsCmd = &cobra.Command{
	Use:   "coeffs",
	Short: "Print the three-term recurrence coefficients of a polynomial family",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger *zap.Logger
			f      families.Family
			ab     types.RecurrenceTable
		)
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return
		}
		if logger, err = newLogger(cmd); err != nil {
			return
		}
		defer logger.Sync()
		p := families.Params{
			Alpha: viper.GetFloat64("alpha"),
			Beta:  viper.GetFloat64("beta"),
			Rho:   viper.GetFloat64("rho"),
		}
		if f, err = families.NewFamilyByName(viper.GetString("family"), p); err != nil {
			logger.Error("family lookup failed", zap.Error(err))
			return
		}
		N := viper.GetInt("pairs")
		if ab, err = f.Recurrence(N); err != nil {
			logger.Error("recurrence failed", zap.String("family", f.Name()), zap.Int("N", N), zap.Error(err))
			return
		}
		logger.Debug("recurrence computed", zap.String("family", f.Name()), zap.Int("N", N))
		return printRecurrence(cmd.OutOrStdout(), f.Name(), ab, viper.GetInt("precision"))
	},
}

func init() {
	rootCmd.AddCommand(CoeffsCmd)
	CoeffsCmd.Flags().StringP("family", "f", "jacobi", "polynomial family: jacobi, legendre, chebyshev, hermite, laguerre")
	CoeffsCmd.Flags().IntP("pairs", "N", 10, "number of recurrence pairs")
	CoeffsCmd.Flags().Float64("alpha", 0, "Jacobi/Laguerre alpha exponent, > -1")
	CoeffsCmd.Flags().Float64("beta", 0, "Jacobi beta exponent, > -1")
	CoeffsCmd.Flags().Float64("rho", 0, "generalized Hermite exponent, > -1/2")
	CoeffsCmd.Flags().IntP("precision", "p", 16, "significant digits printed")
}

func printRecurrence(w io.Writer, name string, ab types.RecurrenceTable, precision int) (err error) {
	if _, err = fmt.Fprintf(w, "# %s, %d recurrence pairs\n#%3s %*s %*s\n",
		name, ab.Len(), "n", precision+8, "a_n", precision+8, "b_n"); err != nil {
		return
	}
	for n := 0; n < ab.Len(); n++ {
		if _, err = fmt.Fprintf(w, "%4d %*.*g %*.*g\n", n,
			precision+8, precision, ab.A[n], precision+8, precision, ab.B[n]); err != nil {
			return
		}
	}
	return
}
