package assert

import "github.com/oomph-ac/nightfall/oerror"

// IsTrue panics with a NightfallError if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
