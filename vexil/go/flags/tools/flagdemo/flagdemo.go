/*
 * Copyright 2025 The Vexil Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Binary flagdemo echoes the values of its typed flags, demonstrating
// registration, parsing, and usage reporting.
//
// Example:
//
//	flagdemo -addr localhost:9090 -retries=5 --verbose
//	FLAGDEMO_ARGS='-timeout 0.5' flagdemo -addr localhost:9090
package main

import (
	"fmt"
	"os"

	"vexil.io/vexil/go/flags"
	"vexil.io/vexil/go/util/flagutil"
	"vexil.io/vexil/go/util/log"
	"vexil.io/vexil/go/util/profile"
)

func init() {
	flags.CommandLine.Usage = flagutil.SimpleUsage(flags.CommandLine,
		"Echo the values of the demo flags",
		"-addr ADDRESS [-retries TIMES] [-timeout SECONDS] [--verbose]")
}

var (
	addr    = flagutil.MustString(flags.CommandLine, "addr", "", "'ADDRESS' to contact", flags.Mandatory())
	retries = flagutil.MustInt(flags.CommandLine, "retries", 3, "number of 'TIMES' to retry")
	timeout = flagutil.MustFloat(flags.CommandLine, "timeout", 2.5, "request timeout in 'SECONDS'")
	verbose = flagutil.MustBool(flags.CommandLine, "verbose", "enable verbose logging")
)

func main() {
	args, err := flagutil.ArgsFromEnv("FLAGDEMO_ARGS", os.Args[1:])
	if err != nil {
		flagutil.UsageError(flags.CommandLine, err.Error())
	}
	flagutil.ExitOnError(flags.CommandLine, args)

	if err := profile.Start(); err != nil {
		log.Fatal(err)
	}
	defer profile.Stop()

	if verbose.Value() {
		log.Infof("parsed %d arguments", len(args))
		flags.CommandLine.VisitAll(func(f flags.Flag) {
			log.Infof("flag %s=%s (provided: %v)", f.Name(), f, flags.CommandLine.Provided(f.Name()))
		})
	}

	if retries.Equal(0) {
		log.Warningf("retries are disabled")
	}

	fmt.Printf("addr: %s\n", addr.Value())
	fmt.Printf("retries: %d (default: %v)\n", retries.Value(), retries.IsDefault())
	fmt.Printf("timeout: %gs (default: %v)\n", timeout.Value(), timeout.IsDefault())
	fmt.Printf("verbose: %v\n", verbose.Value())
}
