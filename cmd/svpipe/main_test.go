package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strandline/svpipe/internal/params"
)

func parseCommand(t *testing.T, args ...string) (string, params.MapSource, map[string]*pipelineCommand) {
	t.Helper()
	reg := params.Default()
	app, global, commands, err := buildApp(reg)
	if err != nil {
		t.Fatalf("buildApp returned error: %v", err)
	}

	selected, err := app.Parse(args)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	src := mergeSources(global.Source(), commands[selected].options.Source())
	return selected, src, commands
}

func TestOptionSetTracksUserFlags(t *testing.T) {
	selected, src, _ := parseCommand(t, "detect", "--mapping-quality", "20", "--distribute")
	if selected != "detect" {
		t.Fatalf("unexpected command: %s", selected)
	}

	if v, ok := src.Field("mapping_quality"); !ok || v != 20 {
		t.Fatalf("expected mapping_quality 20 in source, got %v (%v)", v, ok)
	}
	if v, ok := src.Field("distribute"); !ok || v != true {
		t.Fatalf("expected distribute true in source, got %v (%v)", v, ok)
	}
	if _, ok := src.Field("wait_time"); ok {
		t.Fatalf("expected unset flags to be absent from source")
	}
}

func TestInvertedFlagStoresAlias(t *testing.T) {
	_, src, _ := parseCommand(t, "align", "--no-link-index")

	if v, ok := src.Field("link_index"); !ok || v != false {
		t.Fatalf("expected link_index false in source, got %v (%v)", v, ok)
	}
	if _, ok := src.Field("no_link_index"); ok {
		t.Fatalf("expected inverted flag to store only the aliased field")
	}

	got, err := params.Resolve("no_link_index", params.WithSource(src))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != false {
		t.Fatalf("expected resolved link_index false, got %v", got)
	}
}

func TestVariantsPositional(t *testing.T) {
	_, src, _ := parseCommand(t, "call", "--sample", "NA12878", "sv_calls.vcf.gz")

	if v, ok := src.Field("variants"); !ok || v != "sv_calls.vcf.gz" {
		t.Fatalf("expected positional variants in source, got %v (%v)", v, ok)
	}
	if v, ok := src.Field("sample"); !ok || v != "NA12878" {
		t.Fatalf("expected sample override in source, got %v (%v)", v, ok)
	}

	_, src, _ = parseCommand(t, "call")
	if _, ok := src.Field("variants"); ok {
		t.Fatalf("expected omitted positional to be absent from source")
	}
	got, err := params.Resolve("variants", params.WithSource(src))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "variants.vcf.gz" {
		t.Fatalf("expected default output name, got %v", got)
	}
}

func TestResolveSet(t *testing.T) {
	reg := params.Default()
	_, src, commands := parseCommand(t, "detect", "--min-support", "10")

	keys := append(append([]string{}, baseKeys...), commands["detect"].keys...)
	resolved, err := resolveSet(reg, src, keys)
	if err != nil {
		t.Fatalf("resolveSet returned error: %v", err)
	}

	if resolved["min_support"] != 10 {
		t.Fatalf("expected overridden min_support, got %v", resolved["min_support"])
	}
	if resolved["mapping_quality"] != 30 {
		t.Fatalf("expected registry default mapping_quality, got %v", resolved["mapping_quality"])
	}
	if _, ok := resolved["log"]; ok {
		t.Fatalf("expected valueless parameters to be omitted")
	}
	if _, ok := resolved["exclude"]; ok {
		t.Fatalf("expected nil-default parameters to be omitted")
	}
}

func TestSubmissionCommand(t *testing.T) {
	reg := params.Default()

	path := filepath.Join(t.TempDir(), "cluster.yaml")
	data := "__default__:\n  cpu: 4\n  mem: 8G\n  rt: \"24:00:00\"\n  params: -q all.q\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write cluster config: %v", err)
	}

	src := params.MapSource{"cluster_config": path, "log": "log/detect"}
	got, err := submissionCommand(reg, src, "detect")
	if err != nil {
		t.Fatalf("submissionCommand returned error: %v", err)
	}

	want := " -V -cwd -j y -o ./log/detect -pe serial 4 -l mfree=8G -l h_rt=24:00:00 -q all.q -l gpfsstate=0 -w n -S /bin/bash"
	if got != want {
		t.Fatalf("unexpected submission command:\nwant %q\ngot  %q", want, got)
	}
}

func TestSubmissionCommandWithoutClusterConfig(t *testing.T) {
	reg := params.Default()

	got, err := submissionCommand(reg, params.MapSource{}, "align")
	if err != nil {
		t.Fatalf("submissionCommand returned error: %v", err)
	}

	want := " -V -cwd -j y -o ./log -pe serial {cluster.cpu} -l mfree={cluster.mem} -l h_rt={cluster.rt} {cluster.params} -l gpfsstate=0 -w n -S /bin/bash"
	if got != want {
		t.Fatalf("unexpected submission template:\nwant %q\ngot  %q", want, got)
	}
}

func TestStageKeysAreRegistered(t *testing.T) {
	reg := params.Default()
	for stage, keys := range stageKeys {
		for _, key := range keys {
			if _, err := reg.Lookup(key); err != nil {
				t.Fatalf("stage %s references unregistered key %s", stage, key)
			}
		}
	}
	for _, key := range baseKeys {
		if _, err := reg.Lookup(key); err != nil {
			t.Fatalf("base set references unregistered key %s", key)
		}
	}
}
