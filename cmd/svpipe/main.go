package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/strandline/svpipe/internal/cluster"
	"github.com/strandline/svpipe/internal/logging"
	"github.com/strandline/svpipe/internal/params"
)

// baseKeys are bound as global flags shared by every command.
var baseKeys = []string{
	"cluster_config",
	"distribute",
	"drmaalib",
	"dryrun",
	"jobs",
	"job_prefix",
	"keep_going",
	"log",
	"nt",
	"tempdir",
	"verbose",
	"wait_time",
	"cluster_params",
}

// stageKeys maps each pipeline command to the catalogue keys it consumes on
// top of the base set. The run command aggregates the four primary stages.
var stageKeys = map[string][]string{
	"align": {
		"reference", "reads", "batches", "threads", "alignment_parameters", "no_link_index",
	},
	"detect": {
		"mapping_quality", "assembly_window_size", "assembly_window_slide",
		"candidate_group_size", "exclude", "max_candidate_length",
		"max_coverage", "max_support", "min_coverage", "min_hardstop_support",
		"min_length", "min_support",
	},
	"assemble": {
		"asm_alignment_parameters", "asm_cpu", "asm_mem", "asm_polish",
		"asm_group_rt", "asm_parallel", "asm_rt",
	},
	"call": {
		"sample", "species", "rmsk",
	},
	"genotype": {
		"genotyper_config", "genotyped_variants", "gt_mapq", "gt_map_cpu",
		"gt_map_mem", "gt_map_disk", "gt_map_time", "gt_keep_temp", "threads",
	},
}

// runStageKeys returns the aggregated key set for the run command.
func runStageKeys() []string {
	var keys []string
	for _, stage := range []string{"align", "detect", "assemble", "call"} {
		keys = append(keys, stageKeys[stage]...)
	}
	return append(keys, "runjobs")
}

// pipelineCommand couples a parsed subcommand with the keys it resolves.
type pipelineCommand struct {
	keys    []string
	options *optionSet
}

// buildApp constructs the CLI from the parameter catalogue so flag names,
// defaults, and help text all come from the registry.
func buildApp(reg *params.Registry) (*kingpin.Application, *optionSet, map[string]*pipelineCommand, error) {
	app := kingpin.New("svpipe", "Structural variant discovery pipeline for PacBio reads")
	app.HelpFlag.Short('h')

	global := newOptionSet()
	if err := global.bindFlags(app, reg, baseKeys...); err != nil {
		return nil, nil, nil, err
	}

	commands := make(map[string]*pipelineCommand)
	add := func(name, help string, keys []string, withVariants bool) error {
		cmd := app.Command(name, help)
		set := newOptionSet()
		if err := set.bindFlags(cmd, reg, keys...); err != nil {
			return err
		}
		if withVariants {
			def, err := reg.Lookup("variants")
			if err != nil {
				return err
			}
			set.bindArg(cmd.Arg("variants", def.Help), def)
			keys = append(keys, "variants")
		}
		commands[name] = &pipelineCommand{keys: keys, options: set}
		return nil
	}

	steps := []struct {
		name         string
		help         string
		keys         []string
		withVariants bool
	}{
		{"run", "Run the whole pipeline: align, detect, assemble, and call.", runStageKeys(), true},
		{"align", "Align PacBio reads to the reference.", stageKeys["align"], false},
		{"detect", "Detect SV candidate regions from read alignments.", stageKeys["detect"], false},
		{"assemble", "Run local assemblies over candidate regions.", stageKeys["assemble"], false},
		{"call", "Call structural variants from local assembly alignments.", stageKeys["call"], true},
		{"genotype", "Genotype called variants with short-read data.", stageKeys["genotype"], false},
	}
	for _, s := range steps {
		if err := add(s.name, s.help, s.keys, s.withVariants); err != nil {
			return nil, nil, nil, err
		}
	}

	return app, global, commands, nil
}

// resolveSet resolves every key through the shared precedence chain.
// Parameters that legitimately resolve to no value are omitted from the
// result rather than failing, since optional inputs such as --reference are
// validated by the pipeline stages that consume them.
func resolveSet(reg *params.Registry, src params.Source, keys []string) (map[string]any, error) {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		v, err := reg.Resolve(key, params.WithSource(src), params.AllowMissing())
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", key, err)
		}
		if v == nil {
			continue
		}
		out[key] = v
	}
	return out, nil
}

// submissionCommand renders the cluster submission string for a command,
// expanding the scheduling profile when a cluster configuration file was
// supplied.
func submissionCommand(reg *params.Registry, src params.Source, command string) (string, error) {
	tmpl, err := reg.String("cluster_params", params.WithSource(src))
	if err != nil {
		return "", err
	}

	logDir, err := reg.Resolve("log", params.WithSource(src), params.AllowMissing())
	if err != nil {
		return "", err
	}
	dir, _ := logDir.(string)
	if dir == "" {
		dir = "log"
	}
	rendered := cluster.Render(tmpl, dir)

	cfgPath, err := reg.Resolve("cluster_config", params.WithSource(src), params.AllowMissing())
	if err != nil {
		return "", err
	}
	path, _ := cfgPath.(string)
	if path == "" {
		return rendered, nil
	}

	cfg, err := cluster.Load(path)
	if err != nil {
		return "", err
	}
	return cluster.Expand(rendered, cfg.Rule(command)), nil
}

func mergeSources(sets ...params.MapSource) params.MapSource {
	merged := make(params.MapSource)
	for _, set := range sets {
		for field, value := range set {
			merged[field] = value
		}
	}
	return merged
}

func main() {
	reg := params.Default()

	app, global, commands, err := buildApp(reg)
	if err != nil {
		panic(fmt.Sprintf("failed to build command line: %v", err))
	}

	selected := kingpin.MustParse(app.Parse(os.Args[1:]))
	command := commands[selected]
	src := mergeSources(global.Source(), command.options.Source())

	verbose, err := reg.Bool("verbose", params.WithSource(src))
	if err != nil {
		panic(fmt.Sprintf("failed to resolve verbosity: %v", err))
	}

	logger, err := logging.New(verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	keys := make([]string, 0, len(baseKeys)+len(command.keys))
	keys = append(keys, baseKeys...)
	keys = append(keys, command.keys...)

	resolved, err := resolveSet(reg, src, keys)
	if err != nil {
		logger.Fatal("parameter resolution failed", zap.String("command", selected), zap.Error(err))
	}
	logger.Info("resolved parameters", zap.String("command", selected), zap.Int("parameters", len(resolved)))

	distribute, err := reg.Bool("distribute", params.WithSource(src))
	if err != nil {
		logger.Fatal("failed to resolve distribution mode", zap.Error(err))
	}
	if distribute {
		submission, err := submissionCommand(reg, src, selected)
		if err != nil {
			logger.Fatal("cluster submission setup failed", zap.Error(err))
		}
		logger.Info("cluster submission parameters", zap.String("submission", submission))
	}

	out, err := yaml.Marshal(resolved)
	if err != nil {
		logger.Fatal("failed to encode parameters", zap.Error(err))
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Fatal("failed to write parameters", zap.Error(err))
	}
}
