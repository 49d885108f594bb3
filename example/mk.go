// This is an example jarmk configuration script for a two-module build with
// an embedded core library.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"git.fractalqb.de/fractalqb/jarmk"
	"git.fractalqb.de/fractalqb/jarmk/jarkore"
	"git.fractalqb.de/fractalqb/jarmk/mkmeta"
)

var (
	tracer = &jarmk.WriteTracer{W: os.Stderr, Log: jarkore.DefaultTraceLog}

	clean, dryrun bool
	writeDot      bool
)

func flags() {
	flag.BoolVar(&writeDot, "dot", writeDot, "Write graphviz file to stdout and exit")
	flag.BoolVar(&clean, "clean", clean, "Empty the archives configuration")
	flag.BoolVar(&dryrun, "n", dryrun, "Dryrun")
	fTrace := flag.String("trace", "", "Set trace level")
	flag.Parse()

	if err := tracer.ParseLogFlag(*fTrace); err != nil {
		log.Fatal(err)
	}
}

func main() {
	flags()

	prj := jarmk.NewProject(".")
	prj.SetTrace(jarmk.NewTrace(context.Background(), tracer))

	if nfo, err := mkmeta.LoadProject(prj); err == nil {
		nfo.ApplyTo(prj)
	}

	err := jarmk.Edit(prj, func(prj jarmk.ProjectEd) {
		prj.Apply(jarmk.CapJava)

		core := prj.Sub("core").Apply(jarmk.CapJava)
		core.Configuration("embedded").
			AddDependency(jarkore.FilesDependency{"libs/annotations.jar"})
		core.StandardPublicJars()
		core.TestsJar(nil)

		prj.Configuration("embedded").
			AddDependency(jarkore.ProjectDependency{Prj: core.Project()})
		prj.StandardPublicJars()

		up := prj.Publish()
		up.AddRepository("https://repo.example.com/releases")
	})
	if err != nil {
		log.Fatal(err)
	}

	if writeDot {
		if _, err := prj.WriteDot(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}
	if clean {
		jarmk.CleanArtifacts(prj, dryrun)
		return
	}
	if err := prj.Evaluate(); err != nil {
		log.Fatal(err)
	}
}
