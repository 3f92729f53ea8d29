package cluster

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultRule is the profile consulted for rules without their own entry.
const defaultRule = "__default__"

// Profile holds the scheduling resources declared for one pipeline rule in
// the cluster configuration file.
type Profile struct {
	CPU    int    `yaml:"cpu"`
	Mem    string `yaml:"mem"`
	RT     string `yaml:"rt"`
	Params string `yaml:"params"`
}

// Config maps rule names to scheduling profiles. The "__default__" entry
// backfills fields that a rule-specific profile leaves unset.
type Config map[string]Profile

// Load reads a cluster configuration YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse cluster config: %w", err)
	}

	return cfg, nil
}

// Rule returns the effective profile for the named rule, filling unset
// fields from the __default__ profile.
func (c Config) Rule(name string) Profile {
	base := c[defaultRule]
	p, ok := c[name]
	if !ok {
		return base
	}
	if p.CPU == 0 {
		p.CPU = base.CPU
	}
	if p.Mem == "" {
		p.Mem = base.Mem
	}
	if p.RT == "" {
		p.RT = base.RT
	}
	if p.Params == "" {
		p.Params = base.Params
	}
	return p
}

// Render substitutes the {log} place-holder in a submission template and
// collapses escaped braces, so "{{cluster.cpu}}" becomes "{cluster.cpu}" for
// the workflow engine to fill in at submission time. logDir must not contain
// braces.
func Render(template, logDir string) string {
	out := strings.ReplaceAll(template, "{log}", logDir)
	out = strings.ReplaceAll(out, "{{", "{")
	out = strings.ReplaceAll(out, "}}", "}")
	return out
}

// Expand fills the {cluster.X} place-holders of a rendered submission
// template from a scheduling profile, mirroring what the workflow engine
// does when it submits a job.
func Expand(rendered string, p Profile) string {
	r := strings.NewReplacer(
		"{cluster.cpu}", strconv.Itoa(p.CPU),
		"{cluster.mem}", p.Mem,
		"{cluster.rt}", p.RT,
		"{cluster.params}", p.Params,
	)
	return r.Replace(rendered)
}
