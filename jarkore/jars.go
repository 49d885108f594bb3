package jarkore

// Property keys [SetupPublicJar] reads from the root project. The mkmeta
// package fills them from the shared build metadata file.
const (
	PropVendor      = "vendor"
	PropTitle       = "title"
	PropBuildNumber = "build.number"
)

// RuntimeJar wires the project's public runtime jar: it reuses or creates
// the "runtimeJar" task, merges the resolved contents of an "embedded"
// configuration if the project has one, stamps the public archive
// coordinates, applies body last and registers the task's output under the
// "archives" and "runtimeJar" slots plus "runtime" if that configuration is
// present. A pre-existing default "jar" task is disabled and stripped of its
// artifacts after evaluation, exactly once per project.
func RuntimeJar(prj *Project, body func(*JarTask)) (*JarTask, error) {
	jar, err := prj.GetOrCreateJarTask("runtimeJar", func(t *JarTask) {
		if main := prj.SourceSet("main"); main != nil {
			t.FromDirs(main.Output)
		}
	})
	if err != nil {
		return nil, err
	}
	if embedded := prj.Configurations().Find("embedded"); embedded != nil {
		jar.AddDependsOn(embedded.Name())
		jar.FromConfiguration(embedded)
	}
	jar.SetDuplicates(DupExclude)
	SetupPublicJar(prj, jar, "", "")
	if body != nil {
		body(jar)
	}
	AddArtifact(prj, "archives", jar)
	AddArtifact(prj, "runtimeJar", jar)
	if rt := prj.Configurations().Find("runtime"); rt != nil {
		AddArtifactTo(rt, jar)
	}
	prj.state.runtimeJar = jar
	if !prj.state.defaultJarStrip {
		prj.state.defaultJarStrip = true
		prj.AfterEvaluate("no-default-jar", func(p *Project) error {
			NoDefaultJar(p)
			return nil
		})
	}
	return jar, nil
}

// SourcesJar reuses or creates the "sourcesJar" task packaging the project's
// main sources plus the sources of every project dependency declared in an
// "embedded" configuration. The task's output is registered under "archives"
// and "sources".
func SourcesJar(prj *Project, body func(*JarTask)) (*JarTask, error) {
	jar, err := prj.GetOrCreateJarTask("sourcesJar", func(t *JarTask) {
		SetupPublicJar(prj, t, "", "sources")
		t.SetDuplicates(DupExclude)
		if main := prj.SourceSet("main"); main != nil {
			t.FromDirs(main.SrcDirs...)
		}
		embedded := prj.Configurations().Find("embedded")
		if embedded == nil {
			return
		}
		for _, d := range embedded.Dependencies() {
			pd, ok := d.(ProjectDependency)
			if !ok {
				continue
			}
			if ms := pd.Prj.SourceSet("main"); ms != nil {
				t.FromDirs(ms.SrcDirs...)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if body != nil {
		body(jar)
	}
	AddArtifact(prj, "archives", jar)
	AddArtifact(prj, "sources", jar)
	return jar, nil
}

// JavadocJar reuses or creates the "javadocJar" task. The destination
// directory of the project's "javadoc" task is packaged only when that task
// exists and is enabled. The task's output is registered under "archives".
func JavadocJar(prj *Project, body func(*JarTask)) (*JarTask, error) {
	jar, err := prj.GetOrCreateJarTask("javadocJar", func(t *JarTask) {
		SetupPublicJar(prj, t, "", "javadoc")
		if jd, ok := prj.FindTask("javadoc").(*JavadocTask); ok && jd.Enabled() {
			t.AddDependsOn(jd.Name())
			t.FromDirs(jd.DestDir())
		}
	})
	if err != nil {
		return nil, err
	}
	if body != nil {
		body(jar)
	}
	AddArtifact(prj, "archives", jar)
	return jar, nil
}

// TestsJar reuses or creates the "testsJar" task depending on test
// compilation. Its dedicated "tests-jar" configuration extends "testCompile"
// when that is present. Test output is packaged only when the java
// capability is installed. The task is registered as artifact of its own
// configuration.
func TestsJar(prj *Project, body func(*JarTask)) (*JarTask, error) {
	cfg := prj.Configurations().GetOrCreate("tests-jar")
	if tc := prj.Configurations().Find("testCompile"); tc != nil {
		cfg.ExtendFrom(tc)
	}
	jar, err := prj.GetOrCreateJarTask("testsJar", func(t *JarTask) {
		SetupPublicJar(prj, t, "", "tests")
		t.AddDependsOn("testClasses")
		if !prj.HasCapability(CapJava) {
			return
		}
		if ts := prj.SourceSet("test"); ts != nil {
			t.FromDirs(ts.Output)
		}
	})
	if err != nil {
		return nil, err
	}
	if body != nil {
		body(jar)
	}
	AddArtifactTo(cfg, jar)
	return jar, nil
}

// StandardPublicJars wires the runtime, sources and javadoc jars with their
// default setup.
func StandardPublicJars(prj *Project) error {
	if _, err := RuntimeJar(prj, nil); err != nil {
		return err
	}
	if _, err := SourcesJar(prj, nil); err != nil {
		return err
	}
	_, err := JavadocJar(prj, nil)
	return err
}

// SetupPublicJar stamps tsk with its public archive coordinates: base name
// (default: the project name), classifier, and the implementation manifest
// attributes sourced from the root project's shared build metadata. Without
// a recorded build number the version falls back to "SNAPSHOT".
func SetupPublicJar(prj *Project, tsk *JarTask, baseName, classifier string) {
	if baseName == "" {
		baseName = prj.Name()
	}
	root := prj.Root()
	buildNr := root.StringProp(PropBuildNumber, "SNAPSHOT")
	vendor := root.StringProp(PropVendor, "unspecified")
	title := root.StringProp(PropTitle, baseName)
	tsk.SetBaseName(baseName)
	tsk.SetClassifier(classifier)
	tsk.SetVersion(buildNr)
	tsk.SetManifestAttribute(ManifestVendor, vendor)
	tsk.SetManifestAttribute(ManifestTitle, title)
	tsk.SetManifestAttribute(ManifestVersion, buildNr)
}

// RuntimeJarTaskIfExists returns the runtime jar task recorded by
// [RuntimeJar]. Without such a record it falls back to the conventional
// "jar" task lookup and returns nil if that does not exist either.
func RuntimeJarTaskIfExists(prj *Project) Task {
	if jt := prj.state.runtimeJar; jt != nil {
		return jt
	}
	if t := prj.FindTask("jar"); t != nil {
		return t
	}
	return nil
}
