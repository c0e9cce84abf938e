package audit

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	ioerrors "github.com/wippyai/iosafe/errors"
)

// Policy holds a module to its own rules about gate usage. The zero value
// permits everything.
type Policy struct {
	// AllowPackages restricts gate calls to the listed import paths. A path
	// ending in "/..." allows the whole subtree. Empty means any package.
	AllowPackages []string `yaml:"allow_packages"`
	// RequireReason rejects gate calls whose acknowledgment reason is not a
	// non-empty string literal at the call site.
	RequireReason bool `yaml:"require_reason"`
	// ForbidLiteral rejects gate calls whose raw argument is a constant.
	ForbidLiteral bool `yaml:"forbid_literal"`
	// Baseline lists positions (file:line prefixes) of known sites accepted
	// as-is, so the policy can tighten without breaking existing audits.
	Baseline []string `yaml:"baseline"`
}

// LoadPolicy reads a YAML policy file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioerrors.InvalidPolicy(path, err)
	}
	return ParsePolicy(path, data)
}

// ParsePolicy parses YAML policy bytes; path is used for error reporting.
func ParsePolicy(path string, data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, ioerrors.InvalidPolicy(path, err)
	}
	return &p, nil
}

// Check evaluates the report against the policy and returns one structured
// error per finding. An empty result means the module conforms.
func (p *Policy) Check(r *Report) []*ioerrors.Error {
	var findings []*ioerrors.Error

	for _, site := range r.Sites {
		if p.baselined(site.Pos) {
			continue
		}
		if len(p.AllowPackages) > 0 && !p.packageAllowed(site.Package) {
			findings = append(findings, ioerrors.PolicyViolation(site.Pos,
				"gate call in package "+site.Package+" which is not in allow_packages"))
		}
		if p.RequireReason && site.Reason == "" {
			findings = append(findings, ioerrors.MissingReason(site.Pos))
		}
		if p.ForbidLiteral && site.Literal {
			findings = append(findings, ioerrors.New(ioerrors.PhaseGate, ioerrors.KindForgedConstant).
				Site(site.Pos).
				Detail("raw argument is a literal constant").
				Build())
		}
	}

	return findings
}

func (p *Policy) packageAllowed(pkg string) bool {
	for _, allowed := range p.AllowPackages {
		if subtree, ok := strings.CutSuffix(allowed, "/..."); ok {
			if pkg == subtree || strings.HasPrefix(pkg, subtree+"/") {
				return true
			}
			continue
		}
		if pkg == allowed {
			return true
		}
	}
	return false
}

func (p *Policy) baselined(pos string) bool {
	for _, b := range p.Baseline {
		if strings.HasPrefix(pos, b) {
			return true
		}
	}
	return false
}
