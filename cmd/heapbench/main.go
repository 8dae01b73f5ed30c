// heapbench benchmarks interchangeable priority-queue backends across a
// matrix of tasks and input sizes, emitting CSV rows or a pairwise
// comparison report.
package main

import "os"

func main() {
	os.Exit(execute(os.Args[1:]))
}
