package shell

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xyproto/env/v2"

	"github.com/Bryantad/Sona-sub001/pkg/must"
	"github.com/Bryantad/Sona-sub001/pkg/prog"
	"github.com/Bryantad/Sona-sub001/pkg/testutil"
)

func TestLoadConfig_Defaults(t *testing.T) {
	setupTest(t)

	cfg, err := LoadConfig(&prog.Flags{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_DefaultPath(t *testing.T) {
	dir := setupTest(t)
	must.WriteFile(filepath.Join(dir, "config", "sona", "config.yaml"),
		"lib: mylib\ndb: sona.db\n")

	cfg := must.OK1(LoadConfig(&prog.Flags{}))
	if cfg.Lib != "mylib" || cfg.DB != "sona.db" || cfg.AltLib != "stdlib" {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadConfig_File(t *testing.T) {
	setupTest(t)
	must.WriteFile("c.yaml", testutil.Dedent(`
		lib: l
		alt_lib: a
		db: d.db
		extensions: [.sn]
		no_color: true
		`))

	cfg := must.OK1(LoadConfig(&prog.Flags{Config: "c.yaml"}))
	want := &Config{Lib: "l", AltLib: "a", DB: "d.db", Extensions: []string{".sn"}, NoColor: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	setupTest(t)
	must.WriteFile("empty.yaml", "")

	cfg := must.OK1(LoadConfig(&prog.Flags{Config: "empty.yaml"}))
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	setupTest(t)
	must.WriteFile("c.yaml", "lib: file-lib\nalt_lib: file-alt\ndb: file.db\n")
	testutil.Setenv(t, EnvConfig, "c.yaml")
	testutil.Setenv(t, EnvLib, "env-lib")
	testutil.Setenv(t, EnvAltLib, "env-alt")
	env.Load()

	cfg := must.OK1(LoadConfig(&prog.Flags{Lib: "flag-lib"}))
	if cfg.Lib != "flag-lib" {
		t.Errorf("Lib = %q, want flag-lib", cfg.Lib)
	}
	if cfg.AltLib != "env-alt" {
		t.Errorf("AltLib = %q, want env-alt", cfg.AltLib)
	}
	if cfg.DB != "file.db" {
		t.Errorf("DB = %q, want file.db", cfg.DB)
	}
}

func TestLoadConfig_NoColor(t *testing.T) {
	setupTest(t)
	if cfg := must.OK1(LoadConfig(&prog.Flags{NoColor: true})); !cfg.NoColor {
		t.Errorf("-nocolor not respected")
	}

	testutil.Setenv(t, EnvNoColor, "1")
	env.Load()
	if cfg := must.OK1(LoadConfig(&prog.Flags{})); !cfg.NoColor {
		t.Errorf("$NO_COLOR not respected")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	setupTest(t)
	must.WriteFile("unknown.yaml", "colour: red\n")
	must.WriteFile("ext.yaml", "extensions: [sona]\n")
	must.WriteFile("syntax.yaml", "lib: [\n")

	_, err := LoadConfig(&prog.Flags{Config: "missing.yaml"})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v, want fs.ErrNotExist", err)
	}

	for _, test := range []struct {
		file string
		want string
	}{
		{"unknown.yaml", "field colour not found"},
		{"ext.yaml", `bad module extension "sona"`},
		{"syntax.yaml", "syntax.yaml: yaml:"},
	} {
		_, err := LoadConfig(&prog.Flags{Config: test.file})
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: got error %v, want containing %q", test.file, err, test.want)
		}
	}
}
