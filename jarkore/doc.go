// Package jarkore implements the core model of jarmk for configuring JVM
// artifact packaging and publication in multi-module projects. It uses
// idiomatic Go error handling, which can make writing jarmk configuration
// scripts a bit cumbersome. However, this package serves as a solid foundation
// for build-definition code that wires jar tasks, attaches their outputs to
// configurations and prepares artifact publication. The core concepts are
// [Project], [Configuration], [Task] and [Artifact]. An easy-to-use wrapper
// for everyday use in configuration scripts is provided by the [jarmk]
// package.
//
// jarkore only describes what the host build will do. Tasks are declarative:
// they are created, wired and disabled here, but never run.
//
// [jarmk]: https://pkg.go.dev/git.fractalqb.de/fractalqb/jarmk
package jarkore
