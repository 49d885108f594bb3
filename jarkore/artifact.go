package jarkore

import "fmt"

// An Artifact is a (producing task, output file) pair registered with a
// [Configuration] for consumption and publication.
type Artifact struct {
	task       Task
	file       string
	classifier string
	typ        string
}

// NewArtifact records tsk's first declared output file as artifact. Jar
// tasks pass their classifier on to the record.
func NewArtifact(tsk Task) *Artifact {
	a := &Artifact{task: tsk, typ: "jar"}
	if outs := tsk.OutputFiles(); len(outs) > 0 {
		a.file = outs[0]
	}
	if jt, ok := tsk.(*JarTask); ok {
		a.classifier = jt.Classifier()
	}
	return a
}

func (a *Artifact) Task() Task { return a.task }

func (a *Artifact) File() string { return a.file }

func (a *Artifact) Classifier() string { return a.classifier }

func (a *Artifact) SetClassifier(c string) { a.classifier = c }

func (a *Artifact) Type() string { return a.typ }

func (a *Artifact) SetType(t string) { a.typ = t }

func (a *Artifact) String() string {
	if a.classifier == "" {
		return fmt.Sprintf("%s (%s)", a.file, a.task.Name())
	}
	return fmt.Sprintf("%s:%s (%s)", a.file, a.classifier, a.task.Name())
}
