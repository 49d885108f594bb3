package jarkore

import (
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestConfigurations_GetOrCreate(t *testing.T) {
	prj := NewProject(t.Name())
	cs := prj.Configurations()
	c1 := cs.GetOrCreate("archives")
	c2 := cs.GetOrCreate("archives")
	if c1 != c2 {
		t.Error("second GetOrCreate returns different configuration")
	}
	if l := cs.Len(); l != 1 {
		t.Errorf("container has %d entries", l)
	}
}

func TestAddArtifact_createsConfiguration(t *testing.T) {
	prj := NewProject(t.Name())
	jar := NewJarTask(prj, "jar")
	testerr.Shall(prj.RegisterTask(jar)).BeNil(t)
	if prj.Configurations().Find("archives") != nil {
		t.Fatal("fresh project already has an archives configuration")
	}
	a := AddArtifact(prj, "archives", jar)
	c := prj.Configurations().Find("archives")
	if c == nil {
		t.Fatal("AddArtifact did not create the configuration")
	}
	if l := len(c.Artifacts()); l != 1 {
		t.Fatalf("configuration has %d artifacts", l)
	}
	if c.Artifacts()[0] != a {
		t.Error("attached artifact is not the returned record")
	}
}

func TestConfiguration_RemoveOutputsOf(t *testing.T) {
	prj := NewProject(t.Name())
	jar := NewJarTask(prj, "jar")
	other := NewJarTask(prj, "other")
	other.SetBaseName("other")
	c := prj.Configurations().GetOrCreate("archives")
	AddArtifactTo(c, jar)
	AddArtifactTo(c, other)

	if n := c.RemoveOutputsOf(jar); n != 1 {
		t.Errorf("removed %d artifacts, want 1", n)
	}
	if l := len(c.Artifacts()); l != 1 {
		t.Fatalf("%d artifacts left, want 1", l)
	}
	if c.Artifacts()[0].Task() != other {
		t.Error("wrong artifact was removed")
	}
	if prj.State().ArtifactsRemoved {
		t.Error("core removal must not touch the diagnostic flag")
	}
}

func TestRemoveArtifacts_flagSetWithoutMatch(t *testing.T) {
	prj := NewProject(t.Name())
	jar := NewJarTask(prj, "jar")
	c := prj.Configurations().GetOrCreate("archives")
	if n := RemoveArtifacts(prj, c, jar); n != 0 {
		t.Errorf("removed %d artifacts from empty configuration", n)
	}
	if !prj.State().ArtifactsRemoved {
		t.Error("diagnostic flag not set by unmatched removal")
	}
}

func TestConfiguration_ClearArtifacts(t *testing.T) {
	prj := NewProject(t.Name())
	c := prj.Configurations().GetOrCreate("archives")
	AddArtifactTo(c, NewJarTask(prj, "jar"))
	c.ClearArtifacts()
	if l := len(c.Artifacts()); l != 0 {
		t.Errorf("%d artifacts left after clear", l)
	}
}

func TestConfiguration_ExtendFrom(t *testing.T) {
	prj := NewProject(t.Name())
	cs := prj.Configurations()
	a, b := cs.GetOrCreate("tests-jar"), cs.GetOrCreate("testCompile")
	a.ExtendFrom(b).ExtendFrom(b)
	if l := len(a.ExtendsFrom()); l != 1 {
		t.Errorf("extendsFrom has %d entries, want 1", l)
	}
}
