// Command scoregraph loads a serialized scored-graph overlay, runs the
// solver, and prints the resulting scores.
package main

func main() {
	Execute()
}
