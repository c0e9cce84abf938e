// Package audit enumerates the auditable surface of the iosafe discipline
// in a Go module: every acknowledged gate call site and every capability
// marker declaration.
//
// The discipline is only as strong as its weakest acknowledgment, so the
// whole point of making gate calls and marker embeds syntactically distinct
// is that reviewers can find them all. Scan turns that from a grep into a
// structured report:
//
//	report, err := audit.Scan(".", "./...")
//	report.Render(os.Stdout)
//
// A YAML policy can then hold a module to its own rules: which packages may
// call the gate, whether reasons are mandatory, and which known sites are
// baselined.
//
//	policy, err := audit.LoadPolicy("iosafe-policy.yaml")
//	findings := policy.Check(report)
package audit
