// Package check provides a go/analysis linter for the iosafe discipline.
//
// The discipline leaves a few hazards that compile cleanly; this analyzer
// flags all of them:
//
//   - a gate call whose raw argument is a literal constant (a forged handle
//     unless the constant happens to denote a live, OS-returned resource);
//   - an acknowledgment with an empty reason, which asserts nothing;
//   - a generic bound that requires raw descriptor exposure without also
//     requiring the iosafe.Safe marker;
//   - an exported constructor that produces a marked wrapper from a raw
//     value without demanding an acknowledgment, bypassing the gate.
//
// Run it standalone with singlechecker, through the audit CLI, or wire it
// into a multichecker alongside other analyzers.
package check
