// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-ireal/pkg/ireal"
	"github.com/consensys/go-ireal/pkg/ireal/rounded"
)

// evalCmd evaluates an arithmetic expression to a requested number of
// decimal digits.
var evalCmd = &cobra.Command{
	Use:   "eval [expr]",
	Short: "Evaluate an expression to a given number of decimal digits.",
	Long: `Evaluate an arithmetic expression exactly, printing the requested number of
decimal digits.  Any digits left undetermined by the enclosure are shown as a
bracketed residual range.  With --rounded, every intermediate result is
normalised to the given number of digits first, trading accuracy (bounded per
operation) for bounded representation size.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		digits := GetUint(cmd, "digits")
		prec := GetUint(cmd, "rounded")
		//
		val, err := ParseExpr(args[0])
		if err != nil {
			log.Errorln(err)
			return
		}
		//
		if prec > 0 {
			val = evalRounded(val, prec)
		}
		//
		printWrapped(val.ShowDecimal(digits))
	},
}

// evalRounded forces a value through the fixed-precision wrapper.  The stock
// precision tag nearest (from above) the requested digit count is used.
func evalRounded(val ireal.Real, digits uint) ireal.Real {
	switch {
	case digits <= 10:
		return rounded.Round[rounded.P10](val).Unwrap()
	case digits <= 20:
		return rounded.Round[rounded.P20](val).Unwrap()
	case digits <= 50:
		return rounded.Round[rounded.P50](val).Unwrap()
	default:
		return rounded.Round[rounded.P100](val).Unwrap()
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().UintP("digits", "n", 30, "number of decimal digits to print")
	evalCmd.Flags().Uint("rounded", 0, "round every intermediate result to this many digits")
}
