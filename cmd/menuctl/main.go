// menuctl inspects and exports saved menu data without the interactive
// editor: validate a file in CI, dump the item CSV, or print counts.
package main

func main() {
	Execute()
}
