// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/jlinkrun/jlinkrun/cmd/jlinkrun"

func main() {
	cmd.Execute()
}
