package jarkore

import (
	"fmt"
	"maps"
	"path/filepath"
)

// DuplicatesStrategy tells the host build what to do with duplicate entries
// when assembling an archive.
type DuplicatesStrategy int

const (
	// DupInclude keeps every entry, duplicates included.
	DupInclude DuplicatesStrategy = iota

	// DupExclude keeps the first entry and drops later duplicates.
	DupExclude

	// DupFail aborts archive assembly on the first duplicate entry.
	DupFail
)

func (d DuplicatesStrategy) String() string {
	switch d {
	case DupInclude:
		return "include"
	case DupExclude:
		return "exclude"
	case DupFail:
		return "fail"
	}
	return fmt.Sprintf("DuplicatesStrategy(%d)", int(d))
}

// Conventional manifest attributes stamped on public jars by
// [SetupPublicJar].
const (
	ManifestVendor  = "Implementation-Vendor"
	ManifestTitle   = "Implementation-Title"
	ManifestVersion = "Implementation-Version"
)

// Content describes one source of entries packaged into a jar. Exactly one
// field is set.
type Content struct {
	// Dir is a directory tree packaged as-is.
	Dir string

	// Config is a configuration whose resolved contents are merged into the
	// jar instead of being referenced externally.
	Config *Configuration

	// Task contributes another task's declared outputs.
	Task Task
}

func (c Content) Describe() string {
	switch {
	case c.Config != nil:
		return "configuration:" + c.Config.Name()
	case c.Task != nil:
		return "task:" + c.Task.Name()
	}
	return "dir:" + c.Dir
}

// A JarTask describes an archive packaging unit of the host build: what goes
// in, under which name the archive lands in the build directory and what its
// manifest says.
type JarTask struct {
	prj  *Project
	name string

	baseName   string
	classifier string
	version    string
	manifest   map[string]string
	dependsOn  []string
	contents   []Content
	duplicates DuplicatesStrategy
	enabled    bool
	actions    []TaskAction
}

var _ Task = (*JarTask)(nil)

// NewJarTask creates an unregistered jar task with a single "package" action
// recorded. See [Project.GetOrCreateJarTask] for registration.
func NewJarTask(prj *Project, name string) *JarTask {
	return &JarTask{
		prj:     prj,
		name:    name,
		enabled: true,
		actions: []TaskAction{{Name: "package"}},
	}
}

// GetOrCreateJarTask returns the jar task named name, registering a new one
// if the project has none. init is applied only when the task is created. A
// registered task of another type under that name is an error.
func (prj *Project) GetOrCreateJarTask(name string, init func(*JarTask)) (*JarTask, error) {
	if t := prj.tasks[name]; t != nil {
		jt, ok := t.(*JarTask)
		if !ok {
			return nil, fmt.Errorf("task '%s' in project '%s' is %T, not a jar task",
				name,
				prj,
				t,
			)
		}
		return jt, nil
	}
	jt := NewJarTask(prj, name)
	if init != nil {
		init(jt)
	}
	if err := prj.RegisterTask(jt); err != nil {
		return nil, err
	}
	return jt, nil
}

func (t *JarTask) Name() string { return t.name }

func (t *JarTask) Project() *Project { return t.prj }

func (t *JarTask) String() string {
	return fmt.Sprintf("%s:%s", t.prj, t.name)
}

func (t *JarTask) DependsOn() []string { return t.dependsOn }

func (t *JarTask) AddDependsOn(names ...string) {
	t.dependsOn = append(t.dependsOn, names...)
}

func (t *JarTask) Enabled() bool { return t.enabled }

func (t *JarTask) SetEnabled(on bool) { t.enabled = on }

func (t *JarTask) BaseName() string {
	if t.baseName == "" {
		return t.prj.Name()
	}
	return t.baseName
}

func (t *JarTask) SetBaseName(n string) { t.baseName = n }

func (t *JarTask) Classifier() string { return t.classifier }

func (t *JarTask) SetClassifier(c string) { t.classifier = c }

func (t *JarTask) Version() string { return t.version }

func (t *JarTask) SetVersion(v string) { t.version = v }

func (t *JarTask) ManifestAttribute(key string) (string, bool) {
	v, ok := t.manifest[key]
	return v, ok
}

func (t *JarTask) SetManifestAttribute(key, val string) {
	if t.manifest == nil {
		t.manifest = make(map[string]string)
	}
	t.manifest[key] = val
}

// Manifest returns a copy of the task's manifest attributes.
func (t *JarTask) Manifest() map[string]string { return maps.Clone(t.manifest) }

func (t *JarTask) FromDirs(dirs ...string) {
	for _, d := range dirs {
		t.contents = append(t.contents, Content{Dir: d})
	}
}

func (t *JarTask) FromConfiguration(c *Configuration) {
	t.contents = append(t.contents, Content{Config: c})
}

func (t *JarTask) FromTask(tsk Task) {
	t.contents = append(t.contents, Content{Task: tsk})
}

func (t *JarTask) Contents() []Content { return t.contents }

func (t *JarTask) Duplicates() DuplicatesStrategy { return t.duplicates }

func (t *JarTask) SetDuplicates(d DuplicatesStrategy) { t.duplicates = d }

func (t *JarTask) Actions() []TaskAction { return t.actions }

func (t *JarTask) AddAction(name string) {
	t.actions = append(t.actions, TaskAction{Name: name})
}

// ClearActions drops all recorded actions so the task performs no work even
// if the host build triggers it.
func (t *JarTask) ClearActions() { t.actions = nil }

// ArchiveName computes the conventional archive file name
// base[-version][-classifier].jar.
func (t *JarTask) ArchiveName() string {
	n := t.BaseName()
	if t.version != "" {
		n += "-" + t.version
	}
	if t.classifier != "" {
		n += "-" + t.classifier
	}
	return n + ".jar"
}

// ArchiveFile returns the path of the archive below the project's build
// directory.
func (t *JarTask) ArchiveFile() string {
	return filepath.Join(t.prj.Dir, "build", "libs", t.ArchiveName())
}

func (t *JarTask) OutputFiles() []string { return []string{t.ArchiveFile()} }

// JarSpec is a comparable snapshot of a jar task's packaging setup.
type JarSpec struct {
	Name       string
	BaseName   string
	Classifier string
	Version    string
	Manifest   map[string]string
	DependsOn  []string
	Contents   []string
	Duplicates DuplicatesStrategy
	Enabled    bool
}

// Spec snapshots t, e.g. to compare the effect of different wiring paths.
func (t *JarTask) Spec() JarSpec {
	s := JarSpec{
		Name:       t.name,
		BaseName:   t.BaseName(),
		Classifier: t.classifier,
		Version:    t.version,
		Manifest:   t.Manifest(),
		DependsOn:  append([]string(nil), t.dependsOn...),
		Duplicates: t.duplicates,
		Enabled:    t.enabled,
	}
	for _, c := range t.contents {
		s.Contents = append(s.Contents, c.Describe())
	}
	return s
}
