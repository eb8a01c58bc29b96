package result

import (
	"fmt"
	"os"
)

// exit is swapped in tests to observe fatal terminations.
var exit = os.Exit

// fatalf reports a contract violation and terminates the process. Violations
// routed here are programming errors, not runtime conditions; they must not
// surface as recoverable failures.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "result: "+format+"\n", args...)
	exit(2)
}
