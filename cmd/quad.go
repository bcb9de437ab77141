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
	"io/ioutil"
	"math"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gopoly/InputParameters"
	"github.com/notargets/gopoly/families"
	"github.com/notargets/gopoly/opoly1d"
	"github.com/notargets/gopoly/readfiles"
	"github.com/notargets/gopoly/types"
	"github.com/notargets/gopoly/utils"
	"github.com/notargets/gopoly/utils/graphics"
	"github.com/notargets/gopoly/writefiles"
)

// QuadCmd represents the quad command
var QuadCmd = &cobra.Command{
	Use:   "quad",
	Short: "Quadrature rule and orthonormal basis tables for a polynomial family",
	Long: `
Computes the recurrence table of the family, its N point quadrature rule and the
orthonormal polynomials of degree 0..k-1 (and derivatives up to --derivative) at
the nodes. Writes x.txt, w.txt, v.txt and v_d<d>.txt to the output directory.

gopoly quad --nodes 100 -k 15 --alpha 0 --beta 0 -o out`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			logger *zap.Logger
			ip     *InputParameters.InputParameters1D
			res    *QuadResult
		)
		if err = viper.BindPFlags(cmd.Flags()); err != nil {
			return
		}
		if logger, err = newLogger(cmd); err != nil {
			return
		}
		defer logger.Sync()
		if ip, err = loadInputParameters(cmd.Flags()); err != nil {
			logger.Error("bad input parameters", zap.Error(err))
			return
		}
		outDir := viper.GetString("outDir")
		if viper.GetBool("profile") {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(outDir), profile.Quiet).Stop()
		}
		ip.Print()
		start := time.Now()
		if res, err = RunQuad(ip, outDir, logger); err != nil {
			logger.Error("quad failed", zap.Error(err))
			return
		}
		logger.Info("quad complete",
			zap.Int("nodes", res.Rule.Len()),
			zap.Int("degrees", ip.K),
			zap.Duration("elapsed", time.Since(start)),
			zap.Strings("files", res.Files))
		logger.Debug("memory", utils.MemUsageFields()...)
		if err = res.PrintSummary(); err != nil {
			return
		}
		if viper.GetBool("graph") {
			res.Graph(time.Duration(viper.GetInt("delay")) * time.Millisecond)
			fmt.Println("Ctrl-C to exit")
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			<-sig
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(QuadCmd)
	addRuleFlags(QuadCmd, 100)
	addQuadFlags(QuadCmd)
}

func addQuadFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("k", "k", 15, "number of polynomial degrees evaluated, 0..k-1")
	cmd.Flags().IntP("derivative", "d", 0, "highest derivative order evaluated")
	cmd.Flags().IntP("threads", "t", 0, "evaluation goroutines, 0 uses every CPU")
	cmd.Flags().StringP("outDir", "o", ".", "directory receiving the output files")
	cmd.Flags().StringP("inputFile", "I", "", "YAML input parameters file")
	cmd.Flags().BoolP("graph", "g", false, "plot the basis at the nodes")
	cmd.Flags().Int("delay", 0, "milliseconds between plotted series")
	cmd.Flags().Bool("profile", false, "write a CPU profile to the output directory")
}

// addRuleFlags registers the flags shared by every rule producing command
func addRuleFlags(cmd *cobra.Command, defaultN int) {
	cmd.Flags().StringP("family", "f", "jacobi", "polynomial family: jacobi, legendre, chebyshev, hermite, laguerre")
	cmd.Flags().IntP("nodes", "N", defaultN, "number of quadrature nodes")
	cmd.Flags().Float64("alpha", 0, "Jacobi/Laguerre alpha exponent, > -1")
	cmd.Flags().Float64("beta", 0, "Jacobi beta exponent, > -1")
	cmd.Flags().Float64("rho", 0, "generalized Hermite exponent, > -1/2")
	cmd.Flags().String("type", "gauss", "rule type: gauss, radau or lobatto")
	cmd.Flags().Float64("left", -1, "fixed Radau node, or left Lobatto node")
	cmd.Flags().Float64("right", 1, "right Lobatto node")
	cmd.Flags().IntP("precision", "p", 16, "significant digits written")
	cmd.Flags().String("table", "", "recurrence table file, as written by coeffs, used in place of --family")
}

// flagFields maps command flags onto the input parameters they set
var flagFields = map[string]func(ip *InputParameters.InputParameters1D){
	"family":     func(ip *InputParameters.InputParameters1D) { ip.Family = viper.GetString("family") },
	"nodes":      func(ip *InputParameters.InputParameters1D) { ip.N = viper.GetInt("nodes") },
	"alpha":      func(ip *InputParameters.InputParameters1D) { ip.Alpha = viper.GetFloat64("alpha") },
	"beta":       func(ip *InputParameters.InputParameters1D) { ip.Beta = viper.GetFloat64("beta") },
	"rho":        func(ip *InputParameters.InputParameters1D) { ip.Rho = viper.GetFloat64("rho") },
	"type":       func(ip *InputParameters.InputParameters1D) { ip.RuleType = viper.GetString("type") },
	"left":       func(ip *InputParameters.InputParameters1D) { ip.Left = viper.GetFloat64("left") },
	"right":      func(ip *InputParameters.InputParameters1D) { ip.Right = viper.GetFloat64("right") },
	"precision":  func(ip *InputParameters.InputParameters1D) { ip.Precision = viper.GetInt("precision") },
	"k":          func(ip *InputParameters.InputParameters1D) { ip.K = viper.GetInt("k") },
	"derivative": func(ip *InputParameters.InputParameters1D) { ip.DerivativeOrder = viper.GetInt("derivative") },
	"threads":    func(ip *InputParameters.InputParameters1D) { ip.Threads = viper.GetInt("threads") },
	"table":      func(ip *InputParameters.InputParameters1D) { ip.RecurrenceFile = viper.GetString("table") },
}

// loadInputParameters starts from the defaults, or from the -I file when one is
// given, then applies flags. Without an input file every flag value (including
// config file and environment values) applies; with one, only flags set on the
// command line override it.
func loadInputParameters(fs *pflag.FlagSet) (ip *InputParameters.InputParameters1D, err error) {
	ip = InputParameters.NewInputParameters1D()
	fileName := viper.GetString("inputFile")
	if fileName != "" {
		var data []byte
		if data, err = ioutil.ReadFile(fileName); err != nil {
			return nil, fmt.Errorf("unable to read input file %s: %w", fileName, err)
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse input file %s: %w", fileName, err)
		}
	}
	fs.VisitAll(func(f *pflag.Flag) {
		set, ok := flagFields[f.Name]
		if !ok {
			return
		}
		if fileName == "" || f.Changed {
			set(ip)
		}
	})
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

// QuadResult holds everything the quad command computes
type QuadResult struct {
	Params *InputParameters.InputParameters1D
	Ab     types.RecurrenceTable
	Rule   types.QuadratureRule
	Table  types.EvaluationTable
	Files  []string
}

// buildRule computes the recurrence table, or reads it from the configured
// file, and the configured rule
func buildRule(ip *InputParameters.InputParameters1D) (ab types.RecurrenceTable, qr types.QuadratureRule, err error) {
	if ip.RecurrenceFile != "" {
		if ab, err = readfiles.ReadRecurrenceFile(ip.RecurrenceFile); err != nil {
			return
		}
	} else {
		var f families.Family
		if f, err = ip.NewFamily(); err != nil {
			return
		}
		if ab, err = f.Recurrence(max(ip.N, ip.K)); err != nil {
			return
		}
	}
	switch ip.RuleType {
	case "radau":
		qr, err = opoly1d.RadauRule(ab, ip.N, ip.Left)
	case "lobatto":
		qr, err = opoly1d.LobattoRule(ab, ip.N, ip.Left, ip.Right)
	default:
		qr, err = opoly1d.GaussRule(ab, ip.N)
	}
	return
}

// RunQuad computes the rule and basis tables of ip and writes them to outDir.
// An empty outDir skips writing.
func RunQuad(ip *InputParameters.InputParameters1D, outDir string, logger *zap.Logger) (res *QuadResult, err error) {
	res = &QuadResult{Params: ip}
	if res.Ab, res.Rule, err = buildRule(ip); err != nil {
		return nil, err
	}
	logger.Debug("rule computed",
		zap.String("family", ip.Family),
		zap.String("type", ip.RuleType),
		zap.Int("N", res.Rule.Len()))
	degrees := make([]int, ip.K)
	for j := range degrees {
		degrees[j] = j
	}
	if res.Table, err = opoly1d.EvaluateParallel(res.Rule.X, degrees, ip.DerivativeOrder, res.Ab, ip.Threads); err != nil {
		return nil, err
	}
	if outDir == "" {
		return
	}
	var fileName string
	if fileName, err = writefiles.WriteVectorFile(outDir, "x.txt", res.Rule.X, ip.Precision); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, fileName)
	if fileName, err = writefiles.WriteVectorFile(outDir, "w.txt", res.Rule.W, ip.Precision); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, fileName)
	for d := 0; d <= ip.DerivativeOrder; d++ {
		name := "v.txt"
		if d > 0 {
			name = "v_d" + strconv.Itoa(d) + ".txt"
		}
		if fileName, err = writefiles.WriteMatrixFile(outDir, name, res.Table.Values[d], ip.Precision); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, fileName)
	}
	return
}

// PrintSummary reports the rule statistics and the orthonormality defect of
// the evaluated basis, max |V^T W V - I|, which is zero to rounding while k <= N.
func (res *QuadResult) PrintSummary() (err error) {
	var (
		w                    = stats.Float64Data(res.Rule.W)
		sum, wMin, wMax, gap float64
	)
	if sum, err = stats.Sum(w); err != nil {
		return
	}
	if wMin, err = stats.Min(w); err != nil {
		return
	}
	if wMax, err = stats.Max(w); err != nil {
		return
	}
	gap = math.Inf(1)
	for i := 1; i < res.Rule.Len(); i++ {
		gap = math.Min(gap, res.Rule.X[i]-res.Rule.X[i-1])
	}
	fmt.Printf("%s rule, %d nodes in [%g, %g]\n",
		res.Params.RuleType, res.Rule.Len(), res.Rule.X[0], res.Rule.X[res.Rule.Len()-1])
	fmt.Printf("weights: sum %.16g (mass %.16g), min %g, max %g\n", sum, res.Ab.Mass(), wMin, wMax)
	if res.Rule.Len() > 1 {
		fmt.Printf("minimum node spacing %g\n", gap)
	}
	fmt.Printf("orthonormality defect over degrees 0..%d: %g\n", res.Params.K-1, res.OrthonormalityDefect())
	return
}

// OrthonormalityDefect returns max |sum_i w_i P_j(x_i) P_k(x_i) - delta_jk|
func (res *QuadResult) OrthonormalityDefect() (defect float64) {
	V := res.Table.Values[0]
	nr, nc := V.Dims()
	colJ, colK := make([]float64, nr), make([]float64, nr)
	for j := 0; j < nc; j++ {
		for k := j; k < nc; k++ {
			for i := 0; i < nr; i++ {
				colJ[i] = res.Rule.W[i] * V.At(i, j)
				colK[i] = V.At(i, k)
			}
			g := floats.Dot(colJ, colK)
			if j == k {
				g -= 1
			}
			defect = math.Max(defect, math.Abs(g))
		}
	}
	return
}

// Graph plots each evaluated degree against the nodes
func (res *QuadResult) Graph(delay time.Duration) {
	V := res.Table.Values[0]
	_, nc := V.Dims()
	x := res.Rule.X
	fMin, fMax := floats.Min(V.RawMatrix().Data), floats.Max(V.RawMatrix().Data)
	lc := graphics.NewLineChart(1920, 1280, x[0], x[len(x)-1], fMin, fMax)
	for j := 0; j < nc; j++ {
		f := res.Table.Column(0, j)
		if err := lc.Plot(delay, x, f, graphics.SeriesColor(j, nc), "P_"+strconv.Itoa(j)); err != nil {
			fmt.Println(err)
			return
		}
	}
}
