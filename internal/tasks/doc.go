// Package tasks holds the catalogue of array exercises.
//
// Every exercise is a pure function over tensors plus a registry entry that
// knows how to run it on sample input and describe each step. The runner
// executes registry entries; library callers can use the exercise functions
// directly with any backend:
//
//	b := cpu.New()
//	x := tasks.NumericListToArray([]float64{12.23, 13.32, 100, 36.32}, b)
//	fmt.Println(x) // [ 12.23  13.32 100.    36.32]
package tasks
