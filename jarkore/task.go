package jarkore

// A Task stands for a unit of work of the host build. jarmk creates, wires
// and disables tasks but never runs them; execution stays with the host.
type Task interface {
	// Name returns the name of the task that must be unique in the Project.
	Name() string

	Project() *Project

	// DependsOn returns the names of tasks and configurations this task
	// depends on.
	DependsOn() []string

	// OutputFiles returns the files the task declares to produce. Artifact
	// removal matches against these.
	OutputFiles() []string

	Enabled() bool
}

// A TaskAction is a named unit of work the host build would perform when it
// runs the task. Helpers only record and clear actions.
type TaskAction struct {
	Name string
}

// A SourceSet groups the source directories of a compilation unit with the
// directory its output lands in.
type SourceSet struct {
	Name    string
	SrcDirs []string
	Output  string
}

// JavadocTask stands for the project's API documentation generation. Its
// only role in jarmk is to be packaged by [JavadocJar] when it exists and is
// enabled.
type JavadocTask struct {
	prj       *Project
	name      string
	destDir   string
	dependsOn []string
	enabled   bool
}

var _ Task = (*JavadocTask)(nil)

func NewJavadocTask(prj *Project, name, destDir string) *JavadocTask {
	return &JavadocTask{prj: prj, name: name, destDir: destDir, enabled: true}
}

func (t *JavadocTask) Name() string { return t.name }

func (t *JavadocTask) Project() *Project { return t.prj }

func (t *JavadocTask) DependsOn() []string { return t.dependsOn }

func (t *JavadocTask) AddDependsOn(names ...string) {
	t.dependsOn = append(t.dependsOn, names...)
}

func (t *JavadocTask) DestDir() string { return t.destDir }

func (t *JavadocTask) OutputFiles() []string { return []string{t.destDir} }

func (t *JavadocTask) Enabled() bool { return t.enabled }

func (t *JavadocTask) SetEnabled(on bool) { t.enabled = on }
