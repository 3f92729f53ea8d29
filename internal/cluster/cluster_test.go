package cluster

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `__default__:
  cpu: 1
  mem: 4G
  rt: "48:00:00"
  params: ""
align:
  cpu: 8
  mem: 8G
`

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cluster.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	t.Run("rule overrides default", func(t *testing.T) {
		p := cfg.Rule("align")
		if p.CPU != 8 || p.Mem != "8G" {
			t.Fatalf("unexpected align profile: %+v", p)
		}
		if p.RT != "48:00:00" {
			t.Fatalf("expected rt backfilled from __default__, got %q", p.RT)
		}
	})

	t.Run("missing rule falls back", func(t *testing.T) {
		p := cfg.Rule("detect")
		if p.CPU != 1 || p.Mem != "4G" || p.RT != "48:00:00" {
			t.Fatalf("unexpected fallback profile: %+v", p)
		}
	})
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "{::")); err == nil {
		t.Fatalf("expected error for invalid YAML")
	}
}

func TestRender(t *testing.T) {
	got := Render(" -o ./{log} -pe serial {{cluster.cpu}} -l mfree={{cluster.mem}}", "log/align")
	want := " -o ./log/align -pe serial {cluster.cpu} -l mfree={cluster.mem}"
	if got != want {
		t.Fatalf("unexpected render:\nwant %q\ngot  %q", want, got)
	}
}

func TestExpand(t *testing.T) {
	p := Profile{CPU: 8, Mem: "4G", RT: "24:00:00", Params: "-q all.q"}
	got := Expand("-pe serial {cluster.cpu} -l mfree={cluster.mem} -l h_rt={cluster.rt} {cluster.params}", p)
	want := "-pe serial 8 -l mfree=4G -l h_rt=24:00:00 -q all.q"
	if got != want {
		t.Fatalf("unexpected expansion:\nwant %q\ngot  %q", want, got)
	}
}
