package testutil

import "os"

// Must panics if the error value is not nil. It is typically used like this:
//
//	testutil.Must(a_function())
//
// Where `a_function` returns a single error value. This is useful with
// functions like os.Mkdir to succinctly ensure the test fails to proceed if a
// "can't happen" failure does, in fact, happen.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustWriteFile writes data to the named file, creating it with mode 0600 if
// necessary, and panics if an error occurs.
func MustWriteFile(filename, data string) {
	Must(os.WriteFile(filename, []byte(data), 0600))
}
