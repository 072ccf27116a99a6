// Command modemctl reboots a network modem over SSH, with a simulated
// path for exercising automation without hardware.
package main

import "modemctl/internal/cli"

func main() {
	cli.Execute()
}
