package main

import "github.com/amonks/propdemo/options"

// demoParser declares the options understood by the demo application.
// Every option has a short, a long and, where it maps to a setting, a
// qualified name.
func demoParser() (*options.Parser, error) {
	return options.NewParser(
		options.Accepts("c", "output-charset", "myapp.output-charset").
			WithRequiredArg().
			Describe("Charset used for printed output."),
		options.Accepts("t", "threads", "myapp.max-thread-pool-size").
			WithRequiredArg().
			Describe("Maximum number of worker threads."),
		options.Accepts("v", "verbose", "myapp.verbose").
			Describe("Print more detail."),
		options.Accepts("h", "help").
			Describe("Show help for the demo application. It has no qualified name, so the separator policy never lists it."),
	)
}
