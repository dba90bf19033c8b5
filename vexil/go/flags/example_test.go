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

package flags_test

import (
	"fmt"
	"os"

	"vexil.io/vexil/go/flags"
)

func Example() {
	reg := flags.NewRegistry("server")
	port, _ := reg.Int("port", 8080, "'PORT' to listen on")
	verbose, _ := reg.Bool("verbose", "enable verbose logging")

	if err := reg.Parse([]string{"-port=9090", "--verbose"}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(port.Value(), verbose.Value())
	// Output: 9090 true
}

func ExampleRegistry_WriteUsage() {
	reg := flags.NewRegistry("server")
	reg.Int("port", 8080, "'PORT' to listen on", flags.Mandatory())
	reg.Bool("verbose", "enable verbose logging")

	reg.WriteUsage(os.Stdout)
	// Output:
	// Usage of server:
	// -port PORT
	//     PORT to listen on (mandatory)
	// --verbose
	//     enable verbose logging
}

func ExampleRegistry_Parse_errors() {
	reg := flags.NewRegistry("server")
	reg.Bool("verbose", "enable verbose logging")
	fmt.Println(reg.Parse([]string{"-verbose=true"}))

	reg = flags.NewRegistry("server")
	reg.Int("port", 8080, "'PORT' to listen on", flags.Mandatory())
	fmt.Println(reg.Parse(nil))

	// Output:
	// boolean flags have to be specified as "--verbose", not "-verbose=value"
	// mandatory flag "port" not provided
}
