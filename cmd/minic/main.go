// Command minic compiles a single-function C file to an x86-64 executable.
package main

import (
	"context"
	"os"

	"github.com/GriffinCanCode/minic/pkg/driver"
)

func main() {
	os.Exit(driver.Main(context.Background(), os.Args[1:], os.Stderr))
}
