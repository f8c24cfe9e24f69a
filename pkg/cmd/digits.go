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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-ireal/pkg/ireal"
)

// digitsCmd prints the decimal expansion of a well-known constant.
var digitsCmd = &cobra.Command{
	Use:   "digits [constant]",
	Short: "Print digits of a well-known constant.",
	Long:  "Print the decimal expansion of pi, e, sqrt2 or log2 to a given number of digits.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		digits := GetUint(cmd, "digits")
		//
		val, ok := namedConstant(args[0])
		if !ok {
			log.Errorln(fmt.Errorf("unknown constant %q", args[0]))
			return
		}
		//
		printWrapped(val.ShowDecimal(digits))
	},
}

func namedConstant(name string) (ireal.Real, bool) {
	switch name {
	case "pi":
		return ireal.Pi(), true
	case "e":
		return ireal.FromInt64(1).Exp(), true
	case "sqrt2":
		return ireal.FromInt64(2).Sqrt(), true
	case "log2":
		return ireal.FromInt64(2).Log(), true
	default:
		return ireal.Real{}, false
	}
}

func init() {
	rootCmd.AddCommand(digitsCmd)
	digitsCmd.Flags().UintP("digits", "n", 100, "number of decimal digits to print")
}
