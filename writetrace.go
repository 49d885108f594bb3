package jarmk

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"git.fractalqb.de/fractalqb/jarmk/jarkore"
	"git.fractalqb.de/fractalqb/sllm/v3"
)

type WriteTracer struct {
	W   io.Writer
	Log jarkore.TraceLog
}

var _ jarkore.Tracer = (*WriteTracer)(nil)

func DefaultTracer() jarkore.Tracer {
	return &WriteTracer{W: os.Stderr, Log: jarkore.TraceWarn}
}

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = jarkore.TraceWarn
	case "info", "i":
		tr.Log = jarkore.TraceWarn | jarkore.TraceInfo
	case "debug", "d":
		tr.Log = jarkore.TraceWarn | jarkore.TraceInfo | jarkore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr WriteTracer) Debug(t *jarkore.Trace, msg string, args ...any) {
	if tr.Log&jarkore.TraceDebug == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%s\t  DEBUG ", t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) Info(t *jarkore.Trace, msg string, args ...any) {
	if tr.Log&(jarkore.TraceInfo|jarkore.TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%s\t  INFO  ", t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) Warn(t *jarkore.Trace, msg string, args ...any) {
	if tr.Log&(jarkore.TraceWarn|jarkore.TraceInfo|jarkore.TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%s\t  WARN  ", t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr WriteTracer) StartProject(t *jarkore.Trace, p *jarkore.Project, activity string) {
	fmt.Fprintf(tr.W, "%s\t{ %s project '%s' in %s\n",
		t.TopTag(),
		activity,
		p,
		p.Dir,
	)
}

func (tr WriteTracer) DoneProject(t *jarkore.Trace, p *jarkore.Project, activity string, dt time.Duration) {
	fmt.Fprintf(tr.W, "%s\t} %s project '%s' took %s\n",
		t.TopTag(),
		activity,
		p,
		dt,
	)
}

func (tr WriteTracer) logMutations() bool {
	return tr.Log&(jarkore.TraceInfo|jarkore.TraceDebug) != 0
}

func (tr WriteTracer) CapabilityApplied(t *jarkore.Trace, p *jarkore.Project, c jarkore.Capability) {
	if tr.logMutations() {
		fmt.Fprintf(tr.W, "%s\t+ capability '%s' on '%s'\n", t.TopTag(), c, p)
	}
}

func (tr WriteTracer) ConfigurationCreated(t *jarkore.Trace, c *jarkore.Configuration) {
	if tr.logMutations() {
		fmt.Fprintf(tr.W, "%s\t+ configuration [%s]\n", t.TopTag(), c.Name())
	}
}

func (tr WriteTracer) TaskRegistered(t *jarkore.Trace, tsk jarkore.Task) {
	if tr.logMutations() {
		fmt.Fprintf(tr.W, "%s\t+ task (%s)\n", t.TopTag(), tsk.Name())
	}
}

func (tr WriteTracer) ArtifactAttached(t *jarkore.Trace, c *jarkore.Configuration, a *jarkore.Artifact) {
	if tr.logMutations() {
		fmt.Fprintf(tr.W, "%s\t> attach %s to [%s]\n", t.TopTag(), a, c.Name())
	}
}

func (tr WriteTracer) ArtifactRemoved(t *jarkore.Trace, c *jarkore.Configuration, a *jarkore.Artifact) {
	if tr.logMutations() {
		fmt.Fprintf(tr.W, "%s\t< remove %s from [%s]\n", t.TopTag(), a, c.Name())
	}
}

func (tr WriteTracer) CheckRegistered(t *jarkore.Trace, p *jarkore.Project, name string) {
	if tr.Log&jarkore.TraceDebug != 0 {
		fmt.Fprintf(tr.W, "%s\t? defer check '%s' on '%s'\n", t.TopTag(), name, p)
	}
}

func (tr WriteTracer) CheckFailed(t *jarkore.Trace, p *jarkore.Project, name string, err error) {
	fmt.Fprintf(tr.W, "%s\t! check '%s' on '%s' failed: %s\n", t.TopTag(), name, p, err)
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", n)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no key '%s", n)
}
