package jarkore

// AddArtifact registers tsk as an artifact of the configuration named
// cfgName, creating the configuration first if the project has none.
func AddArtifact(prj *Project, cfgName string, tsk Task) *Artifact {
	return AddArtifactTo(prj.Configurations().GetOrCreate(cfgName), tsk)
}

// AddArtifactTo registers tsk as an artifact of cfg.
func AddArtifactTo(cfg *Configuration, tsk Task) *Artifact {
	return AddArtifactWith(cfg, tsk, nil)
}

// AddArtifactWith registers tsk as an artifact of cfg and lets body attach
// extra metadata, e.g. a classifier, to the artifact record before it is
// attached.
func AddArtifactWith(cfg *Configuration, tsk Task, body func(*Artifact)) *Artifact {
	a := NewArtifact(tsk)
	if body != nil {
		body(a)
	}
	cfg.attach(a)
	return a
}

// RemoveArtifacts drops every artifact of cfg whose backing file is among
// tsk's declared output files and reports how many were dropped. The
// project's ArtifactsRemoved flag is set even when nothing matched: an
// attempted removal is what invalidates a later [Publish].
func RemoveArtifacts(prj *Project, cfg *Configuration, tsk Task) int {
	prj.state.ArtifactsRemoved = true
	return cfg.RemoveOutputsOf(tsk)
}

// NoDefaultJar takes the conventional "jar" task out of the build: its
// recorded actions are cleared so it performs no work even if triggered, it
// is disabled, and its artifacts are removed from every configuration of the
// project. Without a "jar" task this is a silent no-op.
func NoDefaultJar(prj *Project) {
	tsk := prj.FindTask("jar")
	if tsk == nil {
		return
	}
	if jt, ok := tsk.(*JarTask); ok {
		jt.ClearActions()
		jt.SetEnabled(false)
	}
	for _, c := range prj.Configurations().All(nil) {
		RemoveArtifacts(prj, c, tsk)
	}
}

// CleanArtifacts empties the "archives" configuration's artifact list
// unconditionally. Without an "archives" configuration it does nothing.
func CleanArtifacts(prj *Project) {
	if c := prj.Configurations().Find("archives"); c != nil {
		c.ClearArtifacts()
	}
}
