package jarmk

import (
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/jarmk/jarkore"
)

type TestTracer struct{ T *testing.T }

var _ jarkore.Tracer = TestTracer{}

func (tr TestTracer) Debug(t *jarkore.Trace, msg string, args ...any) {
	tr.T.Logf("jarmk-DEBUG: "+msg, args...)
}

func (tr TestTracer) Info(t *jarkore.Trace, msg string, args ...any) {
	tr.T.Logf("jarmk-INFO: "+msg, args...)
}

func (tr TestTracer) Warn(t *jarkore.Trace, msg string, args ...any) {
	tr.T.Logf("jarmk-WARN: "+msg, args...)
}

func (tr TestTracer) StartProject(t *jarkore.Trace, p *jarkore.Project, activity string) {
	tr.T.Logf("jarmk-StartProject: %s %s", p, activity)
}

func (tr TestTracer) DoneProject(t *jarkore.Trace, p *jarkore.Project, activity string, dt time.Duration) {
	tr.T.Logf("jarmk-DoneProject: %s %s %s", p, activity, dt)
}

func (tr TestTracer) CapabilityApplied(t *jarkore.Trace, p *jarkore.Project, c jarkore.Capability) {
	tr.T.Logf("jarmk-CapabilityApplied: %s %s", p, c)
}

func (tr TestTracer) ConfigurationCreated(t *jarkore.Trace, c *jarkore.Configuration) {
	tr.T.Logf("jarmk-ConfigurationCreated: %s", c)
}

func (tr TestTracer) TaskRegistered(t *jarkore.Trace, tsk jarkore.Task) {
	tr.T.Logf("jarmk-TaskRegistered: %s", tsk.Name())
}

func (tr TestTracer) ArtifactAttached(t *jarkore.Trace, c *jarkore.Configuration, a *jarkore.Artifact) {
	tr.T.Logf("jarmk-ArtifactAttached: %s > %s", a, c)
}

func (tr TestTracer) ArtifactRemoved(t *jarkore.Trace, c *jarkore.Configuration, a *jarkore.Artifact) {
	tr.T.Logf("jarmk-ArtifactRemoved: %s < %s", a, c)
}

func (tr TestTracer) CheckRegistered(t *jarkore.Trace, p *jarkore.Project, name string) {
	tr.T.Logf("jarmk-CheckRegistered: %s %s", p, name)
}

func (tr TestTracer) CheckFailed(t *jarkore.Trace, p *jarkore.Project, name string, err error) {
	tr.T.Logf("jarmk-CheckFailed: %s %s: %s", p, name, err)
}
