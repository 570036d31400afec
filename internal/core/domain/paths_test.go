package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/goldbuild/gold/internal/core/domain"
)

func TestObjectPath(t *testing.T) {
	cases := map[string]string{
		"main.c":          "main.o",
		"src/core.c":      "src/core.o",
		"src/lib.cpp":     "src/lib.o",
		"noextension":     "noextension.o",
		"dir.v2/module.c": "dir.v2/module.o",
	}
	for source, want := range cases {
		if got := domain.ObjectPath(source); got != filepath.FromSlash(want) {
			t.Errorf("ObjectPath(%q) = %q, want %q", source, got, want)
		}
	}
}

func TestTarget_ArtifactPath(t *testing.T) {
	cases := []struct {
		target domain.Target
		want   string
	}{
		{domain.Target{Name: "app", Kind: domain.Executable}, "app"},
		{domain.Target{Name: "core", Kind: domain.StaticLib}, "core.a"},
		{domain.Target{Name: "plugin", Kind: domain.SharedLib}, "plugin.so"},
		{domain.Target{Name: "app", Kind: domain.Executable, OutputDir: "bin"}, filepath.Join("bin", "app")},
	}
	for _, c := range cases {
		if got := c.target.ArtifactPath(); got != c.want {
			t.Errorf("ArtifactPath() for %s = %q, want %q", c.target.Name, got, c.want)
		}
	}
}

func TestTarget_ObjectPaths(t *testing.T) {
	target := domain.Target{Name: "core", Sources: []string{"a.c", "b.c"}}
	got := target.ObjectPaths()
	if len(got) != 2 || got[0] != "a.o" || got[1] != "b.o" {
		t.Errorf("ObjectPaths() = %v", got)
	}
}

func TestExternalDep_LinkInput(t *testing.T) {
	withPath := domain.ExternalDep{Name: "vendor", Kind: domain.ExternalStaticLib, Path: "third_party"}
	if got := withPath.LinkInput(); got != filepath.Join("third_party", "vendor.a") {
		t.Errorf("LinkInput() = %q", got)
	}

	bare := domain.ExternalDep{Name: "vendor", Kind: domain.ExternalStaticLib}
	if got := bare.LinkInput(); got != "vendor.a" {
		t.Errorf("LinkInput() = %q", got)
	}
}

func TestAction_ID(t *testing.T) {
	compile := domain.Action{Kind: domain.ActionCompile, Source: "main.c"}
	if got := compile.ID(); got != "compile main.c" {
		t.Errorf("ID() = %q", got)
	}
	link := domain.Action{Kind: domain.ActionLink, Output: "core.a"}
	if got := link.ID(); got != "link core.a" {
		t.Errorf("ID() = %q", got)
	}
}

func TestTargetStatus_Terminal(t *testing.T) {
	terminal := []domain.TargetStatus{
		domain.StatusUpToDate, domain.StatusBuilt, domain.StatusFailed, domain.StatusSkipped,
	}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []domain.TargetStatus{domain.StatusUnevaluated, domain.StatusPlanned, domain.StatusRunning} {
		if s.Terminal() {
			t.Errorf("expected %s not to be terminal", s)
		}
	}
}
