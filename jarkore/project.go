package jarkore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Capability names an installed build capability of a [Project], e.g. Java
// compilation or artifact publishing. Helpers check the capability set of a
// project instead of querying the host build's plugin registry by name.
type Capability string

const (
	// CapJava installs the conventional Java project layout: the "main" and
	// "test" source sets, the default "jar" and "javadoc" tasks and the
	// "archives", "runtime" and "testCompile" configurations.
	CapJava Capability = "java"

	// CapPublishing installs the upload task that publishes the artifacts of
	// the "archives" configuration.
	CapPublishing Capability = "publishing"
)

// BuildState carries the mutable configuration state shared between helper
// invocations. It replaces ad hoc per-project property storage with explicit
// fields.
type BuildState struct {
	// ArtifactsRemoved records that artifact removal has been attempted on
	// this project, whether or not anything matched. [Publish] must run
	// before that happens.
	ArtifactsRemoved bool

	runtimeJar      *JarTask
	defaultJarStrip bool
}

// RuntimeJarTask returns the task recorded by [RuntimeJar], if any.
func (s *BuildState) RuntimeJarTask() *JarTask { return s.runtimeJar }

type check struct {
	name string
	do   func(*Project) error
}

// A Project is the context all helpers mutate: its configurations, tasks,
// source sets and properties belong to the host build, jarmk only wires them.
// Projects form a tree; shared build metadata like the build number lives on
// the root project.
type Project struct {
	Dir string

	sync.Mutex

	parent  *Project
	subs    []*Project
	configs Configurations
	tasks   map[string]Task
	srcSets map[string]*SourceSet
	props   map[string]any
	caps    map[Capability]bool
	checks  []check
	state   BuildState
	trc     *Trace
}

func NewProject(dir string) *Project {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	prj := &Project{
		Dir:     dir,
		tasks:   make(map[string]Task),
		srcSets: make(map[string]*SourceSet),
		props:   make(map[string]any),
		caps:    make(map[Capability]bool),
	}
	prj.configs.prj = prj
	return prj
}

func (prj *Project) Name() string { return filepath.Base(prj.Dir) }

func (prj *Project) String() string {
	tmp := prj.Dir
	if tmp == "" || tmp == "." {
		tmp, _ = filepath.Abs(tmp)
	}
	return filepath.Base(tmp)
}

// Sub creates a subproject of prj in dir. Subprojects resolve properties
// they do not define themselves through their parents.
func (prj *Project) Sub(dir string) (*Project, error) {
	if dir == "" {
		return nil, fmt.Errorf("creating unnamed subproject of %s", prj)
	}
	sub := NewProject(dir)
	sub.parent = prj
	sub.trc = prj.trc
	prj.subs = append(prj.subs, sub)
	return sub, nil
}

func (prj *Project) Parent() *Project { return prj.parent }

func (prj *Project) Root() *Project {
	for prj.parent != nil {
		prj = prj.parent
	}
	return prj
}

func (prj *Project) Subprojects() []*Project { return prj.subs }

func (prj *Project) Configurations() *Configurations { return &prj.configs }

func (prj *Project) State() *BuildState { return &prj.state }

// SetTrace attaches t to prj so that configuration mutations are reported.
// A nil trace turns reporting off.
func (prj *Project) SetTrace(t *Trace) { prj.trc = t }

func (prj *Project) trace() *Trace { return prj.trc }

// Prop looks up a property of prj. Properties not set on prj itself are
// resolved through the parent chain.
func (prj *Project) Prop(key string) (any, bool) {
	for p := prj; p != nil; p = p.parent {
		if v, ok := p.props[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func (prj *Project) SetProp(key string, v any) { prj.props[key] = v }

// StringProp returns the property key as string, or dflt if the property is
// unset or not a string.
func (prj *Project) StringProp(key, dflt string) string {
	if v, ok := prj.Prop(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return dflt
}

func (prj *Project) HasCapability(c Capability) bool { return prj.caps[c] }

// Apply installs capability c on prj. Known capabilities install their tasks,
// configurations and source sets; unknown capabilities are just recorded.
// Applying a capability twice is a no-op.
func (prj *Project) Apply(c Capability) error {
	if prj.caps[c] {
		return nil
	}
	prj.caps[c] = true
	prj.trace().capabilityApplied(prj, c)
	switch c {
	case CapJava:
		return prj.applyJava()
	case CapPublishing:
		return prj.applyPublishing()
	}
	return nil
}

func (prj *Project) applyJava() error {
	prj.SetSourceSet(&SourceSet{
		Name:    "main",
		SrcDirs: []string{filepath.Join("src", "main", "java")},
		Output:  filepath.Join("build", "classes", "main"),
	})
	prj.SetSourceSet(&SourceSet{
		Name:    "test",
		SrcDirs: []string{filepath.Join("src", "test", "java")},
		Output:  filepath.Join("build", "classes", "test"),
	})
	cs := prj.Configurations()
	archives := cs.GetOrCreate("archives")
	runtime := cs.GetOrCreate("runtime")
	cs.GetOrCreate("testCompile")

	jar := NewJarTask(prj, "jar")
	if main := prj.SourceSet("main"); main != nil {
		jar.FromDirs(main.Output)
	}
	if err := prj.RegisterTask(jar); err != nil {
		return err
	}
	archives.attach(NewArtifact(jar))
	runtime.attach(NewArtifact(jar))

	jd := NewJavadocTask(prj, "javadoc", filepath.Join("build", "docs", "javadoc"))
	return prj.RegisterTask(jd)
}

func (prj *Project) applyPublishing() error {
	up := &UploadTask{
		prj:     prj,
		name:    "uploadArchives",
		cfg:     prj.Configurations().GetOrCreate("archives"),
		enabled: true,
	}
	return prj.RegisterTask(up)
}

func (prj *Project) FindTask(name string) Task { return prj.tasks[name] }

// RegisterTask adds tsk to prj's task registry. Task names must be unique in
// the project.
func (prj *Project) RegisterTask(tsk Task) error {
	name := tsk.Name()
	if _, ok := prj.tasks[name]; ok {
		return fmt.Errorf("task '%s' already registered in project '%s'", name, prj)
	}
	prj.tasks[name] = tsk
	prj.trace().taskRegistered(tsk)
	return nil
}

func (prj *Project) Tasks(addTo []Task) []Task {
	if len(prj.tasks) == 0 {
		return addTo
	}
	for _, t := range prj.tasks {
		addTo = append(addTo, t)
	}
	return addTo
}

func (prj *Project) SourceSet(name string) *SourceSet { return prj.srcSets[name] }

func (prj *Project) SetSourceSet(s *SourceSet) { prj.srcSets[s.Name] = s }

// AfterEvaluate defers check until [Project.Evaluate] runs, i.e. until after
// all configuration scripts are done from the host build's point of view.
func (prj *Project) AfterEvaluate(name string, do func(*Project) error) {
	prj.checks = append(prj.checks, check{name: name, do: do})
	prj.trace().checkRegistered(prj, name)
}

// Evaluate runs the deferred checks registered with [Project.AfterEvaluate]
// in registration order, then evaluates all subprojects, joining the errors.
// Each check runs at most once; a second Evaluate only sees checks
// registered in between.
func (prj *Project) Evaluate() error {
	prj.Lock()
	checks := prj.checks
	prj.checks = nil
	start := time.Now()
	tr := prj.trace().pushProject(prj)
	tr.startProject(prj, "evaluating")
	var errs []error
	for _, c := range checks {
		if err := c.do(prj); err != nil {
			tr.checkFailed(prj, c.name, err)
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}
	tr.doneProject(prj, "evaluating", time.Since(start))
	prj.Unlock()
	for _, sub := range prj.subs {
		if err := sub.Evaluate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func escDotID(id string) string {
	return strings.ReplaceAll(id, "\"", "\\\"")
}

// WriteDot writes the project's configuration/artifact graph in graphviz dot
// format: tasks point to the configurations their artifacts are attached to,
// configurations point to the configurations they extend.
func (prj *Project) WriteDot(w io.Writer) (n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			default:
				panic(p)
			}
		}
	}()
	akku := func(p int, err error) {
		n += p
		if err != nil {
			panic(err)
		}
	}
	akku(fmt.Fprintf(w, "digraph \"%s\" {\n\trankdir=\"LR\"\n", escDotID(prj.Name())))
	names := prj.configs.Names()
	for _, cn := range names {
		c := prj.configs.Find(cn)
		var style string
		if len(c.Artifacts()) == 0 {
			style = ",style=dashed"
		}
		akku(fmt.Fprintf(w, "\t\"%p\" [shape=record%s,label=\"{Configuration|%s}\"];\n",
			c,
			style,
			escDotID(cn),
		))
		for _, x := range c.ExtendsFrom() {
			akku(fmt.Fprintf(w, "\t\"%p\" -> \"%p\" [style=dotted];\n", c, x))
		}
		for _, a := range c.Artifacts() {
			akku(fmt.Fprintf(w, "\t\"%p\" -> \"%p\" [label=\"%s\"];\n",
				a.Task(),
				c,
				escDotID(a.Classifier()),
			))
		}
	}
	var ts []Task
	ts = prj.Tasks(ts)
	sort.Slice(ts, func(i, j int) bool { return ts[i].Name() < ts[j].Name() })
	for _, t := range ts {
		var style string
		if !t.Enabled() {
			style = ",style=\"rounded,dashed\""
		} else {
			style = ",style=rounded"
		}
		akku(fmt.Fprintf(w, "\t\"%p\" [shape=box%s,label=\"%s\"];\n",
			t,
			style,
			escDotID(t.Name()),
		))
	}
	akku(fmt.Fprintln(w, "}"))
	return
}
