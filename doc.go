// Package jarmk helps to write the artifact packaging and publication setup
// of multi-module JVM builds in Go. Instead of scattering ad hoc
// configuration mutations over build-definition scripts, jarmk wraps the
// host build's object model of configurations, tasks and artifacts with
// helpers for the conventional public jars (runtime, sources, javadoc,
// tests), artifact registration and removal, and publication wiring. jarmk
// is built around the core concepts of [Project], [Configuration], [Task]
// and [Artifact].
//
// jarmk is just a Go library. It can be used in any context of reasonable
// programming with Go. Nevertheless, a few conventions can be helpful. A
// configuration script is a Go executable that must not collide with the
// rest of the code:
//
//	"mk.go" is the recommended file name for a configuration script
//
// The error-returning core lives in the [jarkore] package. This package adds
// the ergonomic [Edit] wrapper whose editor types panic on errors, with the
// panic recovered into a single error at the end of the edit.
//
// jarmk never packages or publishes anything itself. It only describes what
// the host build will do.
//
// [jarkore]: https://pkg.go.dev/git.fractalqb.de/fractalqb/jarmk/jarkore
package jarmk
