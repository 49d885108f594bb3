package jarmk

import (
	"git.fractalqb.de/fractalqb/jarmk/jarkore"
)

// ProjectEd is used with [Edit].
type ProjectEd struct{ p *Project }

func (ed ProjectEd) Project() *Project { return ed.p }

func (ed ProjectEd) Dir() string { return ed.p.Dir }

func (ed ProjectEd) Apply(c Capability) ProjectEd {
	mustEd(ed.p.Apply(c))
	return ed
}

func (ed ProjectEd) Sub(dir string) ProjectEd {
	return ProjectEd{mustRet(ed.p.Sub(dir))}
}

func (ed ProjectEd) SetProp(key string, v any) ProjectEd {
	ed.p.SetProp(key, v)
	return ed
}

// Configuration returns the configuration named name, creating it if the
// project has none.
func (ed ProjectEd) Configuration(name string) ConfigurationEd {
	return ConfigurationEd{ed.p.Configurations().GetOrCreate(name)}
}

func (ed ProjectEd) FindConfiguration(name string) *Configuration {
	return ed.p.Configurations().Find(name)
}

func (ed ProjectEd) RuntimeJar(body func(*JarTask)) JarTaskEd {
	return JarTaskEd{mustRet(jarkore.RuntimeJar(ed.p, body))}
}

func (ed ProjectEd) SourcesJar(body func(*JarTask)) JarTaskEd {
	return JarTaskEd{mustRet(jarkore.SourcesJar(ed.p, body))}
}

func (ed ProjectEd) JavadocJar(body func(*JarTask)) JarTaskEd {
	return JarTaskEd{mustRet(jarkore.JavadocJar(ed.p, body))}
}

func (ed ProjectEd) TestsJar(body func(*JarTask)) JarTaskEd {
	return JarTaskEd{mustRet(jarkore.TestsJar(ed.p, body))}
}

func (ed ProjectEd) StandardPublicJars() ProjectEd {
	mustEd(jarkore.StandardPublicJars(ed.p))
	return ed
}

func (ed ProjectEd) Publish() *UploadTask {
	return mustRet(jarkore.Publish(ed.p))
}

func (ed ProjectEd) AddArtifact(cfgName string, tsk Task) *Artifact {
	return jarkore.AddArtifact(ed.p, cfgName, tsk)
}

func (ed ProjectEd) NoDefaultJar() ProjectEd {
	jarkore.NoDefaultJar(ed.p)
	return ed
}

func (ed ProjectEd) CleanArtifacts() ProjectEd {
	jarkore.CleanArtifacts(ed.p)
	return ed
}

func (ed ProjectEd) RuntimeJarTaskIfExists() Task {
	return jarkore.RuntimeJarTaskIfExists(ed.p)
}

// ConfigurationEd is used with [Edit].
type ConfigurationEd struct{ c *Configuration }

func (ed ConfigurationEd) Configuration() *Configuration { return ed.c }

func (ed ConfigurationEd) Name() string { return ed.c.Name() }

func (ed ConfigurationEd) Project() ProjectEd { return ProjectEd{ed.c.Project()} }

func (ed ConfigurationEd) ExtendFrom(o ConfigurationEd) ConfigurationEd {
	ed.c.ExtendFrom(o.c)
	return ed
}

func (ed ConfigurationEd) AddDependency(d Dependency) ConfigurationEd {
	ed.c.AddDependency(d)
	return ed
}

func (ed ConfigurationEd) AddArtifactFor(tsk Task, body func(*Artifact)) *Artifact {
	return jarkore.AddArtifactWith(ed.c, tsk, body)
}

func (ed ConfigurationEd) RemoveArtifactsOf(tsk Task) int {
	return jarkore.RemoveArtifacts(ed.c.Project(), ed.c, tsk)
}

// JarTaskEd is used with [Edit].
type JarTaskEd struct{ t *JarTask }

func (ed JarTaskEd) Task() *JarTask { return ed.t }

func (ed JarTaskEd) Project() ProjectEd { return ProjectEd{ed.t.Project()} }

func (ed JarTaskEd) BaseName(n string) JarTaskEd {
	ed.t.SetBaseName(n)
	return ed
}

func (ed JarTaskEd) Classifier(c string) JarTaskEd {
	ed.t.SetClassifier(c)
	return ed
}

func (ed JarTaskEd) ManifestAttribute(key, val string) JarTaskEd {
	ed.t.SetManifestAttribute(key, val)
	return ed
}

func (ed JarTaskEd) FromDirs(dirs ...string) JarTaskEd {
	ed.t.FromDirs(dirs...)
	return ed
}

func (ed JarTaskEd) SetupPublicJar(baseName, classifier string) JarTaskEd {
	jarkore.SetupPublicJar(ed.t.Project(), ed.t, baseName, classifier)
	return ed
}
