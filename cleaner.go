package jarmk

import (
	"git.fractalqb.de/fractalqb/jarmk/jarkore"
	"git.fractalqb.de/fractalqb/qblog"
)

var log = qblog.New(&qblog.DefaultConfig)

// CleanArtifacts empties the "archives" configuration of prj, logging every
// artifact it drops. With dryrun it only logs what would be dropped.
func CleanArtifacts(prj *Project, dryrun bool) {
	prj.Lock()
	defer prj.Unlock()

	c := prj.Configurations().Find("archives")
	if c == nil {
		return
	}
	for _, a := range c.Artifacts() {
		log.Info("drop `artifact` from `configuration`",
			`artifact`, a.String(),
			`configuration`, c.Name(),
		)
	}
	if !dryrun {
		jarkore.CleanArtifacts(prj)
	}
}
