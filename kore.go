package jarmk

import (
	"context"
	"errors"
	"fmt"

	"git.fractalqb.de/fractalqb/jarmk/jarkore"
)

type (
	Project        = jarkore.Project
	Configurations = jarkore.Configurations
	Configuration  = jarkore.Configuration
	Task           = jarkore.Task
	JarTask        = jarkore.JarTask
	JavadocTask    = jarkore.JavadocTask
	UploadTask     = jarkore.UploadTask
	Artifact       = jarkore.Artifact
	Dependency     = jarkore.Dependency
	SourceSet      = jarkore.SourceSet
	Capability     = jarkore.Capability
	BuildState     = jarkore.BuildState
	Trace          = jarkore.Trace
	Tracer         = jarkore.Tracer
)

const (
	CapJava       = jarkore.CapJava
	CapPublishing = jarkore.CapPublishing

	DupInclude jarkore.DuplicatesStrategy = jarkore.DupInclude
	DupExclude jarkore.DuplicatesStrategy = jarkore.DupExclude
	DupFail    jarkore.DuplicatesStrategy = jarkore.DupFail
)

func NewProject(dir string) *Project { return jarkore.NewProject(dir) }

func NewTrace(ctx context.Context, t Tracer) *Trace { return jarkore.NewTrace(ctx, t) }

// Edit calls do with wrappers of [jarkore] types that allow easy editing of
// a project's packaging setup. Edit recovers from any panic and returns it
// as an error, so the idiomatic error handling within do can be skipped.
func Edit(prj *Project, do func(ProjectEd)) (err error) {
	prj.Lock()
	defer func() {
		prj.Unlock()
		if p := recover(); p != nil {
			switch p := p.(type) {
			case error:
				err = p
			case string:
				err = errors.New(p)
			default:
				err = fmt.Errorf("panic: %+v", p)
			}
		}
	}()
	do(ProjectEd{prj})
	return
}

func mustEd(err error) {
	if err != nil {
		panic(err)
	}
}

func mustRet[T any](v T, err error) T {
	mustEd(err)
	return v
}
