// Package bundle implements the "dynamic attribute bag" pattern from the
// original Python design as an explicit schema + value container pair,
// per the re-architecture note in SPEC_FULL.md §9: a Bundle has-a ordered
// list of option names it accepts (its Schema) and a name→value map (its
// Values); a TestContext has-a stuff-under-test Bundle and has-a
// environment Bundle, rather than inheriting from both.
package bundle
