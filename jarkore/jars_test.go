package jarkore

import (
	"path/filepath"
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
	"github.com/google/go-cmp/cmp"
)

func javaProject(t *testing.T) *Project {
	t.Helper()
	prj := NewProject(t.Name())
	testerr.Shall(prj.Apply(CapJava)).BeNil(t)
	return prj
}

func artifactsOf(c *Configuration, tsk Task) (as []*Artifact) {
	for _, a := range c.Artifacts() {
		if a.Task() == tsk {
			as = append(as, a)
		}
	}
	return as
}

func TestRuntimeJar_conventionalSlots(t *testing.T) {
	prj := javaProject(t)
	jar := testerr.Shall1(RuntimeJar(prj, nil)).BeNil(t)
	for _, cn := range []string{"archives", "runtimeJar", "runtime"} {
		c := prj.Configurations().Find(cn)
		if c == nil {
			t.Fatalf("no '%s' configuration", cn)
		}
		if len(artifactsOf(c, jar)) == 0 {
			t.Errorf("runtime jar not registered under '%s'", cn)
		}
	}
	if prj.State().RuntimeJarTask() != jar {
		t.Error("runtime jar task not recorded")
	}
}

func TestRuntimeJar_embedded(t *testing.T) {
	prj := javaProject(t)
	emb := prj.Configurations().GetOrCreate("embedded")
	emb.AddDependency(FilesDependency{filepath.Join("libs", "dep.jar")})
	jar := testerr.Shall1(RuntimeJar(prj, nil)).BeNil(t)
	if !slices.Contains(jar.DependsOn(), "embedded") {
		t.Error("runtime jar does not depend on the embedded configuration")
	}
	if !slices.Contains(jar.Spec().Contents, "configuration:embedded") {
		t.Error("embedded contents not merged into the runtime jar")
	}
	if jar.Duplicates() != DupExclude {
		t.Errorf("duplicates strategy is %s", jar.Duplicates())
	}
	if fls := emb.ResolvedFiles(); len(fls) != 1 {
		t.Errorf("embedded resolves to %v", fls)
	}
}

func TestRuntimeJar_customizationApplied(t *testing.T) {
	prj := javaProject(t)
	jar := testerr.Shall1(RuntimeJar(prj, func(t *JarTask) {
		t.SetDuplicates(DupFail)
		t.SetManifestAttribute("Main-Class", "org.example.Main")
	})).BeNil(t)
	if jar.Duplicates() != DupFail {
		t.Error("callback could not override the duplicates strategy")
	}
	if v, _ := jar.ManifestAttribute("Main-Class"); v != "org.example.Main" {
		t.Errorf("manifest attribute is '%s'", v)
	}
}

// With no "embedded" configuration the runtime jar packages exactly what the
// default jar packages, differing only in manifest attributes, duplicate
// handling and the public archive coordinates.
func TestRuntimeJar_noEmbeddedMatchesDefault(t *testing.T) {
	prj := javaProject(t)
	def := prj.FindTask("jar").(*JarTask)
	jar := testerr.Shall1(RuntimeJar(prj, nil)).BeNil(t)
	got, want := jar.Spec(), def.Spec()
	if diff := cmp.Diff(want.Contents, got.Contents); diff != "" {
		t.Errorf("contents differ from default jar:\n%s", diff)
	}
	if diff := cmp.Diff(want.DependsOn, got.DependsOn); diff != "" {
		t.Errorf("dependencies differ from default jar:\n%s", diff)
	}
	if len(want.Manifest) != 0 {
		t.Error("default jar has manifest attributes")
	}
	if len(got.Manifest) != 3 {
		t.Errorf("runtime jar has %d manifest attributes", len(got.Manifest))
	}
	if got.Duplicates != DupExclude {
		t.Errorf("runtime jar duplicates strategy is %s", got.Duplicates)
	}
}

func TestRuntimeJar_stripsDefaultJarOnEvaluate(t *testing.T) {
	prj := javaProject(t)
	jar := testerr.Shall1(RuntimeJar(prj, nil)).BeNil(t)
	def := prj.FindTask("jar").(*JarTask)
	archives := prj.Configurations().Find("archives")
	if len(artifactsOf(archives, def)) == 0 {
		t.Fatal("default jar artifacts already gone before evaluation")
	}
	testerr.Shall(prj.Evaluate()).BeNil(t)
	if def.Enabled() {
		t.Error("default jar still enabled")
	}
	if l := len(def.Actions()); l != 0 {
		t.Errorf("default jar still has %d actions", l)
	}
	for _, c := range prj.Configurations().All(nil) {
		if len(artifactsOf(c, def)) != 0 {
			t.Errorf("default jar artifact left in '%s'", c.Name())
		}
	}
	if len(artifactsOf(archives, jar)) == 0 {
		t.Error("runtime jar artifact was stripped too")
	}
	if !prj.State().ArtifactsRemoved {
		t.Error("diagnostic flag not set after the deferred strip")
	}
}

func TestNoDefaultJar_idempotent(t *testing.T) {
	prj := javaProject(t)
	def := prj.FindTask("jar").(*JarTask)
	NoDefaultJar(prj)
	if !prj.State().ArtifactsRemoved {
		t.Fatal("diagnostic flag not set")
	}
	counts := make(map[string]int)
	for _, c := range prj.Configurations().All(nil) {
		if len(artifactsOf(c, def)) != 0 {
			t.Errorf("default jar artifact left in '%s'", c.Name())
		}
		counts[c.Name()] = len(c.Artifacts())
	}
	NoDefaultJar(prj)
	if !prj.State().ArtifactsRemoved {
		t.Error("diagnostic flag reset by second call")
	}
	for _, c := range prj.Configurations().All(nil) {
		if len(c.Artifacts()) != counts[c.Name()] {
			t.Errorf("second call changed '%s'", c.Name())
		}
	}
}

func TestNoDefaultJar_withoutJarTask(t *testing.T) {
	prj := NewProject(t.Name())
	NoDefaultJar(prj)
	if prj.State().ArtifactsRemoved {
		t.Error("no-op set the diagnostic flag")
	}
}

func TestSourcesJar(t *testing.T) {
	prj := javaProject(t)
	dep := NewProject("dep")
	testerr.Shall(dep.Apply(CapJava)).BeNil(t)
	dep.SetSourceSet(&SourceSet{
		Name:    "main",
		SrcDirs: []string{filepath.Join("dep", "src", "main", "java")},
		Output:  filepath.Join("dep", "build", "classes", "main"),
	})
	emb := prj.Configurations().GetOrCreate("embedded")
	emb.AddDependency(ProjectDependency{Prj: dep})
	emb.AddDependency(FilesDependency{"ignored.jar"})

	jar := testerr.Shall1(SourcesJar(prj, nil)).BeNil(t)
	if jar.Classifier() != "sources" {
		t.Errorf("classifier is '%s'", jar.Classifier())
	}
	cts := jar.Spec().Contents
	for _, d := range prj.SourceSet("main").SrcDirs {
		if !slices.Contains(cts, "dir:"+d) {
			t.Errorf("own sources '%s' not packaged", d)
		}
	}
	for _, d := range dep.SourceSet("main").SrcDirs {
		if !slices.Contains(cts, "dir:"+d) {
			t.Errorf("embedded project sources '%s' not packaged", d)
		}
	}
	for _, cn := range []string{"archives", "sources"} {
		c := prj.Configurations().Find(cn)
		if c == nil || len(artifactsOf(c, jar)) == 0 {
			t.Errorf("sources jar not registered under '%s'", cn)
		}
	}

	again := testerr.Shall1(SourcesJar(prj, nil)).BeNil(t)
	if again != jar {
		t.Error("second SourcesJar created a new task")
	}
}

func TestJavadocJar(t *testing.T) {
	t.Run("javadoc enabled", func(t *testing.T) {
		prj := javaProject(t)
		jd := prj.FindTask("javadoc").(*JavadocTask)
		jar := testerr.Shall1(JavadocJar(prj, nil)).BeNil(t)
		if !slices.Contains(jar.DependsOn(), "javadoc") {
			t.Error("javadoc jar does not depend on the javadoc task")
		}
		if !slices.Contains(jar.Spec().Contents, "dir:"+jd.DestDir()) {
			t.Error("javadoc output not packaged")
		}
		if jar.Classifier() != "javadoc" {
			t.Errorf("classifier is '%s'", jar.Classifier())
		}
		c := prj.Configurations().Find("archives")
		if c == nil || len(artifactsOf(c, jar)) == 0 {
			t.Error("javadoc jar not registered under 'archives'")
		}
	})
	t.Run("javadoc disabled", func(t *testing.T) {
		prj := javaProject(t)
		prj.FindTask("javadoc").(*JavadocTask).SetEnabled(false)
		jar := testerr.Shall1(JavadocJar(prj, nil)).BeNil(t)
		if l := len(jar.Contents()); l != 0 {
			t.Errorf("disabled javadoc still packaged, %d contents", l)
		}
	})
	t.Run("no javadoc task", func(t *testing.T) {
		prj := NewProject(t.Name())
		jar := testerr.Shall1(JavadocJar(prj, nil)).BeNil(t)
		if l := len(jar.Contents()); l != 0 {
			t.Errorf("missing javadoc still packaged, %d contents", l)
		}
	})
}

func TestTestsJar(t *testing.T) {
	prj := javaProject(t)
	jar := testerr.Shall1(TestsJar(prj, nil)).BeNil(t)
	cfg := prj.Configurations().Find("tests-jar")
	if cfg == nil {
		t.Fatal("no 'tests-jar' configuration")
	}
	tc := prj.Configurations().Find("testCompile")
	if !slices.Contains(cfg.ExtendsFrom(), tc) {
		t.Error("'tests-jar' does not extend 'testCompile'")
	}
	if len(artifactsOf(cfg, jar)) == 0 {
		t.Error("tests jar not an artifact of its own configuration")
	}
	if jar.Classifier() != "tests" {
		t.Errorf("classifier is '%s'", jar.Classifier())
	}
	if !slices.Contains(jar.DependsOn(), "testClasses") {
		t.Error("tests jar does not depend on test compilation")
	}
	if !slices.Contains(jar.Spec().Contents, "dir:"+prj.SourceSet("test").Output) {
		t.Error("test output not packaged")
	}
}

func TestTestsJar_withoutJava(t *testing.T) {
	prj := NewProject(t.Name())
	jar := testerr.Shall1(TestsJar(prj, nil)).BeNil(t)
	if l := len(jar.Contents()); l != 0 {
		t.Errorf("tests jar packages %d contents without java capability", l)
	}
	if cfg := prj.Configurations().Find("tests-jar"); cfg == nil {
		t.Error("no 'tests-jar' configuration")
	} else if l := len(cfg.ExtendsFrom()); l != 0 {
		t.Errorf("'tests-jar' extends %d configurations without 'testCompile'", l)
	}
}

func TestStandardPublicJars(t *testing.T) {
	prj := javaProject(t)
	testerr.Shall(StandardPublicJars(prj)).BeNil(t)
	archives := prj.Configurations().Find("archives")
	// default jar plus runtime, sources and javadoc jars
	if l := len(archives.Artifacts()); l != 4 {
		t.Fatalf("archives has %d artifacts before evaluation", l)
	}
	testerr.Shall(prj.Evaluate()).BeNil(t)
	if l := len(archives.Artifacts()); l != 3 {
		t.Errorf("archives has %d artifacts after evaluation", l)
	}
}

func TestSetupPublicJar(t *testing.T) {
	root := NewProject(t.Name())
	root.SetProp(PropVendor, "ACME")
	root.SetProp(PropBuildNumber, "2024.1")
	app := testerr.Shall1(root.Sub("app")).BeNil(t)
	jar := NewJarTask(app, "runtimeJar")
	SetupPublicJar(app, jar, "", "")
	if n := jar.ArchiveName(); n != "app-2024.1.jar" {
		t.Errorf("archive name is '%s'", n)
	}
	for k, want := range map[string]string{
		ManifestVendor:  "ACME",
		ManifestTitle:   "app",
		ManifestVersion: "2024.1",
	} {
		if v, _ := jar.ManifestAttribute(k); v != want {
			t.Errorf("%s is '%s', want '%s'", k, v, want)
		}
	}

	srcs := NewJarTask(app, "sourcesJar")
	SetupPublicJar(app, srcs, "acme-app", "sources")
	if n := srcs.ArchiveName(); n != "acme-app-2024.1-sources.jar" {
		t.Errorf("archive name is '%s'", n)
	}
}

func TestSetupPublicJar_defaults(t *testing.T) {
	prj := NewProject(t.Name())
	jar := NewJarTask(prj, "runtimeJar")
	SetupPublicJar(prj, jar, "", "")
	if jar.Version() != "SNAPSHOT" {
		t.Errorf("version is '%s'", jar.Version())
	}
	if v, _ := jar.ManifestAttribute(ManifestVendor); v != "unspecified" {
		t.Errorf("vendor is '%s'", v)
	}
}

func TestRuntimeJarTaskIfExists(t *testing.T) {
	prj := NewProject(t.Name())
	if tsk := RuntimeJarTaskIfExists(prj); tsk != nil {
		t.Errorf("empty project yields task %s", tsk.Name())
	}
	testerr.Shall(prj.Apply(CapJava)).BeNil(t)
	if tsk := RuntimeJarTaskIfExists(prj); tsk != prj.FindTask("jar") {
		t.Error("no fallback to the conventional jar task")
	}
	jar := testerr.Shall1(RuntimeJar(prj, nil)).BeNil(t)
	if tsk := RuntimeJarTaskIfExists(prj); tsk != Task(jar) {
		t.Error("recorded runtime jar not returned")
	}
}
