package jarkore

import (
	"errors"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestProject_propInheritance(t *testing.T) {
	root := NewProject(t.Name())
	root.SetProp(PropBuildNumber, "2024.1")
	sub := testerr.Shall1(root.Sub("app")).BeNil(t)
	if v := sub.StringProp(PropBuildNumber, ""); v != "2024.1" {
		t.Errorf("subproject resolves build number '%s'", v)
	}
	sub.SetProp(PropBuildNumber, "local")
	if v := sub.StringProp(PropBuildNumber, ""); v != "local" {
		t.Errorf("subproject override yields '%s'", v)
	}
	if v := root.StringProp("no-such-prop", "dflt"); v != "dflt" {
		t.Errorf("unset property yields '%s'", v)
	}
	if sub.Root() != root {
		t.Error("subproject has wrong root")
	}
}

func TestProject_applyJava(t *testing.T) {
	prj := NewProject(t.Name())
	testerr.Shall(prj.Apply(CapJava)).BeNil(t)
	if !prj.HasCapability(CapJava) {
		t.Error("java capability not recorded")
	}
	jar, ok := prj.FindTask("jar").(*JarTask)
	if !ok {
		t.Fatal("no default jar task")
	}
	if l := len(jar.Actions()); l != 1 {
		t.Errorf("default jar has %d actions", l)
	}
	if prj.FindTask("javadoc") == nil {
		t.Error("no javadoc task")
	}
	for _, cn := range []string{"archives", "runtime", "testCompile"} {
		if prj.Configurations().Find(cn) == nil {
			t.Errorf("no '%s' configuration", cn)
		}
	}
	for _, sn := range []string{"main", "test"} {
		if prj.SourceSet(sn) == nil {
			t.Errorf("no '%s' source set", sn)
		}
	}
	if l := len(prj.Configurations().Find("archives").Artifacts()); l != 1 {
		t.Errorf("archives has %d artifacts, want the default jar", l)
	}
	// applying again must not rewire anything
	testerr.Shall(prj.Apply(CapJava)).BeNil(t)
	if l := len(prj.Configurations().Find("archives").Artifacts()); l != 1 {
		t.Errorf("second apply changed archives to %d artifacts", l)
	}
}

func TestProject_evaluateChecksOnce(t *testing.T) {
	prj := NewProject(t.Name())
	calls := 0
	prj.AfterEvaluate("count", func(*Project) error {
		calls++
		return nil
	})
	prj.AfterEvaluate("fail", func(*Project) error {
		return errors.New("check says no")
	})
	err := prj.Evaluate()
	if err == nil {
		t.Fatal("evaluation did not fail")
	}
	if !strings.Contains(err.Error(), "fail: check says no") {
		t.Errorf("unexpected evaluation error: %s", err)
	}
	if calls != 1 {
		t.Errorf("check ran %d times", calls)
	}
	testerr.Shall(prj.Evaluate()).BeNil(t)
	if calls != 1 {
		t.Errorf("re-evaluation reran checks, %d calls", calls)
	}
}

func TestProject_evaluateSubprojects(t *testing.T) {
	root := NewProject(t.Name())
	sub := testerr.Shall1(root.Sub("app")).BeNil(t)
	sub.AfterEvaluate("sub-fail", func(*Project) error {
		return errors.New("nope")
	})
	err := root.Evaluate()
	if err == nil || !strings.Contains(err.Error(), "sub-fail: nope") {
		t.Errorf("subproject check not propagated: %v", err)
	}
}

func TestProject_taskNamesUnique(t *testing.T) {
	prj := NewProject(t.Name())
	testerr.Shall(prj.RegisterTask(NewJarTask(prj, "jar"))).BeNil(t)
	err := prj.RegisterTask(NewJarTask(prj, "jar"))
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("duplicate registration: %v", err)
	}
}
