package result

import "testing"

type fatalSentinel struct {
	code int
}

// expectFatal swaps the exit hook for one that panics with a sentinel, runs
// fn and asserts the fatal path was reached. Tests using it must not run in
// parallel since they mutate the package-level hook.
func expectFatal(t *testing.T, fn func()) {
	t.Helper()
	orig := exit
	exit = func(code int) { panic(fatalSentinel{code}) }
	t.Cleanup(func() { exit = orig })

	defer func() {
		rec := recover()
		if _, ok := rec.(fatalSentinel); !ok {
			t.Fatalf("expected fatal termination, got: %v", rec)
		}
	}()
	fn()
}
