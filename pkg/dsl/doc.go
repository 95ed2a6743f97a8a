/*
Package dsl provides a fluent Go builder for programmatically constructing
Turing machine definitions.

It allows developers to define machines using a type-safe builder pattern
instead of relying on external YAML or JSON documents. This is particularly
useful for unit tests and dynamic machine generation.

Example usage:

	def, err := dsl.NewMachine("flip").
		States("q0", "qf").
		TapeAlphabet("0", "1", "B").
		Initial("q0").
		Accept("qf").
		RuleList("q0", []string{"0", "1"}, []string{"1", "0"}, "R", "q0").
		Build()
*/
package dsl
