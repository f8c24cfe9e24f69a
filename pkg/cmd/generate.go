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
	"fmt"
	"math/rand/v2"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-ireal/pkg/ireal"
	"github.com/consensys/go-ireal/pkg/ireal/check"
	"github.com/consensys/go-ireal/pkg/ireal/gen"
)

// generateCmd produces random reals, intervals and expression trees, and
// reports the harness verdict for each.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate random adversarial values and validate them.",
	Long: `Generate random reals, intervals and nested expression trees (including
values sitting exactly at dyadic boundaries), check each against the Cauchy
and interval-soundness criteria, and print the verdicts.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		seed := GetUint64(cmd, "seed")
		count := GetUint(cmd, "count")
		digits := GetUint(cmd, "digits")
		rng := rand.New(rand.NewPCG(seed, 0))
		//
		log.Debug(fmt.Sprintf("generating %d values with seed %d", count, seed))
		//
		for i := uint(0); i < count; i++ {
			val := gen.ExpressionTree(rng, func(r *rand.Rand) ireal.Real {
				return gen.UniformReal(r, 0, 1)
			})
			ival := gen.UniformInterval(rng, -8, 8)
			//
			fmt.Printf("real     %s valid=%t\n", val.ShowDecimal(digits), check.IsValidReal(val, rng))
			fmt.Printf("interval %s valid=%t\n", ival.ShowDecimal(digits), check.IsValidInterval(ival, rng))
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint64("seed", 0, "seed for the random generator")
	generateCmd.Flags().Uint("count", 4, "number of values to generate")
	generateCmd.Flags().UintP("digits", "n", 20, "number of decimal digits to print")
}
