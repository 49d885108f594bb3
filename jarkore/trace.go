package jarkore

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

type TracerCommon interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	StartProject(t *Trace, p *Project, activity string)
	DoneProject(t *Trace, p *Project, activity string, dt time.Duration)
}

// ConfigTracer is notified about configuration-time mutations of a project.
type ConfigTracer interface {
	TracerCommon

	CapabilityApplied(t *Trace, p *Project, c Capability)
	ConfigurationCreated(t *Trace, c *Configuration)
	TaskRegistered(t *Trace, tsk Task)
	ArtifactAttached(t *Trace, c *Configuration, a *Artifact)
	ArtifactRemoved(t *Trace, c *Configuration, a *Artifact)
}

// EvalTracer is notified about the deferred checks that run when a project
// is evaluated.
type EvalTracer interface {
	TracerCommon

	CheckRegistered(t *Trace, p *Project, name string)
	CheckFailed(t *Trace, p *Project, name string, err error)
}

type Tracer interface {
	ConfigTracer
	EvalTracer
}

type TraceLog int

var DefaultTraceLog TraceLog = TraceWarn

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

// Trace tracks where in a project's configuration an event happens. All
// methods are safe to call on a nil Trace, which simply drops the event.
type Trace struct {
	root *traceRoot
	up   *Trace
	obj  any
	id   uint64
}

func NewTrace(ctx context.Context, t Tracer) *Trace {
	root := &traceRoot{ctx: ctx, tr: t}
	return &Trace{root: root}
}

func (t *Trace) Ctx() context.Context { return t.root.ctx }

func (t *Trace) Debug(msg string, args ...any) {
	if t != nil {
		t.root.tr.Debug(t, msg, args...)
	}
}

func (t *Trace) Info(msg string, args ...any) {
	if t != nil {
		t.root.tr.Info(t, msg, args...)
	}
}

func (t *Trace) Warn(msg string, args ...any) {
	if t != nil {
		t.root.tr.Warn(t, msg, args...)
	}
}

func (t *Trace) startProject(p *Project, activity string) {
	if t == nil {
		return
	}
	t.root.prj = p
	t.root.tr.StartProject(t, p, activity)
}

func (t *Trace) doneProject(p *Project, activity string, dt time.Duration) {
	if t == nil {
		return
	}
	t.root.tr.DoneProject(t, p, activity, dt)
	t.root.prj = nil
}

func (t *Trace) capabilityApplied(p *Project, c Capability) {
	if t != nil {
		t.root.tr.CapabilityApplied(t, p, c)
	}
}

func (t *Trace) configurationCreated(c *Configuration) {
	if t != nil {
		t.root.tr.ConfigurationCreated(t, c)
	}
}

func (t *Trace) taskRegistered(tsk Task) {
	if t != nil {
		t.root.tr.TaskRegistered(t, tsk)
	}
}

func (t *Trace) artifactAttached(c *Configuration, a *Artifact) {
	if t != nil {
		t.root.tr.ArtifactAttached(t, c, a)
	}
}

func (t *Trace) artifactRemoved(c *Configuration, a *Artifact) {
	if t != nil {
		t.root.tr.ArtifactRemoved(t, c, a)
	}
}

func (t *Trace) checkRegistered(p *Project, name string) {
	if t != nil {
		t.root.tr.CheckRegistered(t, p, name)
	}
}

func (t *Trace) checkFailed(p *Project, name string, err error) {
	if t != nil {
		t.root.tr.CheckFailed(t, p, name, err)
	}
}

func (t *Trace) TopID() uint64 {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Trace) TopTag() string {
	if t == nil {
		return ""
	}
	switch t.obj.(type) {
	case *Configuration:
		return fmt.Sprintf("[%d]", t.id)
	case Task:
		return fmt.Sprintf("(%d)", t.id)
	case *Project:
		return fmt.Sprintf("{%d}", t.id)
	case nil:
		return ""
	}
	return fmt.Sprintf("!%T!", t.obj)
}

func (t *Trace) Path() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for ; t != nil; t = t.up {
		sb.WriteString(t.TopTag())
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t *Trace) String() string {
	if t == nil || t.root.prj == nil {
		return t.Path()
	}
	return fmt.Sprintf("%s@%s", t.root.prj, t.Path())
}

func (t *Trace) pushProject(p *Project) *Trace {
	if t == nil {
		return nil
	}
	return &Trace{
		root: t.root,
		up:   t,
		obj:  p,
		id:   t.root.idSeq.Add(1),
	}
}

func (t *Trace) pushConfiguration(c *Configuration) *Trace {
	if t == nil {
		return nil
	}
	return &Trace{
		root: t.root,
		up:   t,
		obj:  c,
		id:   t.root.idSeq.Add(1),
	}
}

type traceRoot struct {
	ctx   context.Context
	tr    Tracer
	prj   *Project
	idSeq atomic.Uint64
}
