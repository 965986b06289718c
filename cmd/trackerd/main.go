// Command trackerd is the CLI entrypoint for the ontology-driven
// semantic store and query core: it loads ontology files, runs the
// writeback controller, and exposes a handful of administrative
// subcommands over the core's Go packages.
package main

func main() {
	Execute()
}
