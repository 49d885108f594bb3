package jarkore

import (
	"fmt"
	"slices"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Configurations is the per-project container of named configurations. The
// zero value is bound to its project when the project is created.
type Configurations struct {
	prj *Project
	m   map[string]*Configuration
}

func (cs *Configurations) Project() *Project { return cs.prj }

// GetOrCreate returns the configuration named name, creating it first if the
// project has none. It creates at most one entry per name and has no error
// path.
func (cs *Configurations) GetOrCreate(name string) *Configuration {
	if c := cs.m[name]; c != nil {
		return c
	}
	if cs.m == nil {
		cs.m = make(map[string]*Configuration)
	}
	c := &Configuration{name: name, prj: cs.prj}
	cs.m[name] = c
	cs.prj.trace().configurationCreated(c)
	return c
}

// Find returns the configuration named name or nil.
func (cs *Configurations) Find(name string) *Configuration { return cs.m[name] }

func (cs *Configurations) Len() int { return len(cs.m) }

func (cs *Configurations) All(addTo []*Configuration) []*Configuration {
	if len(cs.m) == 0 {
		return addTo
	}
	addTo = slices.Grow(addTo, len(cs.m))
	for _, c := range cs.m {
		addTo = append(addTo, c)
	}
	return addTo
}

// Names returns the sorted names of all configurations.
func (cs *Configurations) Names() []string {
	if len(cs.m) == 0 {
		return nil
	}
	ns := make([]string, 0, len(cs.m))
	for n := range cs.m {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

// A Configuration is a named, mutable bucket of registered artifacts and
// dependencies. Configurations are created on demand and never destroyed by
// jarmk helpers.
type Configuration struct {
	name        string
	prj         *Project
	extendsFrom []*Configuration
	artifacts   []*Artifact
	deps        []Dependency
}

func (c *Configuration) Name() string { return c.name }

func (c *Configuration) Project() *Project { return c.prj }

func (c *Configuration) String() string {
	return fmt.Sprintf("%s/%s", c.prj, c.name)
}

// ExtendFrom makes c inherit from o. Extending from the same configuration
// twice adds it once.
func (c *Configuration) ExtendFrom(o *Configuration) *Configuration {
	if !slices.Contains(c.extendsFrom, o) {
		c.extendsFrom = append(c.extendsFrom, o)
	}
	return c
}

func (c *Configuration) ExtendsFrom() []*Configuration { return c.extendsFrom }

func (c *Configuration) Artifacts() []*Artifact { return c.artifacts }

func (c *Configuration) attach(a *Artifact) {
	c.artifacts = append(c.artifacts, a)
	c.prj.trace().artifactAttached(c, a)
}

// ClearArtifacts drops all artifacts of c.
func (c *Configuration) ClearArtifacts() {
	tr := c.prj.trace()
	for _, a := range c.artifacts {
		tr.artifactRemoved(c, a)
	}
	c.artifacts = nil
}

// RemoveOutputsOf drops every artifact of c whose backing file is among the
// declared output files of tsk and reports how many were dropped. It does
// not touch the project's diagnostic state; see [RemoveArtifacts] for that.
func (c *Configuration) RemoveOutputsOf(tsk Task) int {
	if len(c.artifacts) == 0 {
		return 0
	}
	outs := tsk.OutputFiles()
	if len(outs) == 0 {
		return 0
	}
	drop := bitset.New(uint(len(c.artifacts)))
	for i, a := range c.artifacts {
		if slices.Contains(outs, a.File()) {
			drop.Set(uint(i))
		}
	}
	if drop.None() {
		return 0
	}
	tr := c.prj.trace().pushConfiguration(c)
	kept := make([]*Artifact, 0, len(c.artifacts)-int(drop.Count()))
	for i, a := range c.artifacts {
		if drop.Test(uint(i)) {
			tr.artifactRemoved(c, a)
			continue
		}
		kept = append(kept, a)
	}
	n := len(c.artifacts) - len(kept)
	c.artifacts = kept
	return n
}

func (c *Configuration) AddDependency(d Dependency) {
	c.deps = append(c.deps, d)
}

func (c *Configuration) Dependencies() []Dependency { return c.deps }

// ResolvedFiles enumerates the files the configuration's dependencies
// resolve to. Project dependencies contribute the outputs of their runtime
// jar task, falling back to the conventional "jar" task.
func (c *Configuration) ResolvedFiles() []string {
	var fls []string
	for _, d := range c.deps {
		switch d := d.(type) {
		case FilesDependency:
			fls = append(fls, d...)
		case ProjectDependency:
			if t := RuntimeJarTaskIfExists(d.Prj); t != nil {
				fls = append(fls, t.OutputFiles()...)
			}
		}
	}
	return fls
}

// A Dependency is an entry of a configuration's dependency set. jarmk does
// not resolve dependencies, it only enumerates what build scripts declared.
type Dependency interface {
	Describe() string
}

// FilesDependency declares plain files as dependency.
type FilesDependency []string

func (d FilesDependency) Describe() string {
	return fmt.Sprintf("files %v", []string(d))
}

// ProjectDependency declares another project of the same build as
// dependency. In an "embedded" configuration its sources and outputs are
// merged into the consuming project's jars.
type ProjectDependency struct{ Prj *Project }

func (d ProjectDependency) Describe() string {
	return fmt.Sprintf("project '%s'", d.Prj)
}
