// Command dbgdemo exercises the debug-tools facility: one message per
// emitter, a bare trace point, and a naively recursive Fibonacci whose
// trace counter reports the size of the recursion tree.
//
// Build with -tags dbgwarning (or dbgnone, dbgerror, dbgdebug) to see
// the output shrink with the compiled-in threshold.
package main

import "github.com/DIYEmbeddedSystems/debug-tools/dbg"

// fibonacci is deliberately naive: every invocation reaches the trace
// point, so the final count equals the total number of calls in the
// recursion tree (25 for n=6).
func fibonacci(n int) int {
	dbg.Tracef("n = %d", n)

	if n <= 1 {
		return n
	}
	return fibonacci(n-1) + fibonacci(n-2)
}

func main() {
	x := 0xFFFF
	y := 6
	d := 1.234567e8

	dbg.Infof("Below is the file name and build stamp")
	dbg.Infof("%s", dbg.FileInfo())
	dbg.Infof("This is an information message with params %d, %d, %f", x, y, d)
	dbg.Warningf("This is a warning")
	dbg.Debugf("This is a debug information")
	dbg.Errorf("This is an error")

	dbg.Trace()
	z := fibonacci(y)
	dbg.Infof("z = %d", z)
	dbg.Infof("This is the end of the demonstration")
}
