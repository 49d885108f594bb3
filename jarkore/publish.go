package jarkore

import (
	"errors"
	"fmt"
)

// UploadTask publishes the artifacts of a configuration to the declared
// repositories. It is registered by applying [CapPublishing] and returned
// from [Publish] for further customization.
type UploadTask struct {
	prj       *Project
	name      string
	cfg       *Configuration
	repos     []string
	dependsOn []string
	enabled   bool
}

var _ Task = (*UploadTask)(nil)

func (t *UploadTask) Name() string { return t.name }

func (t *UploadTask) Project() *Project { return t.prj }

func (t *UploadTask) DependsOn() []string { return t.dependsOn }

func (t *UploadTask) AddDependsOn(names ...string) {
	t.dependsOn = append(t.dependsOn, names...)
}

// OutputFiles is nil, an upload produces no local files.
func (t *UploadTask) OutputFiles() []string { return nil }

func (t *UploadTask) Enabled() bool { return t.enabled }

func (t *UploadTask) SetEnabled(on bool) { t.enabled = on }

// Configuration returns the configuration whose artifacts are published.
func (t *UploadTask) Configuration() *Configuration { return t.cfg }

func (t *UploadTask) AddRepository(url string) { t.repos = append(t.repos, url) }

func (t *UploadTask) Repositories() []string { return t.repos }

// Publish makes the project's "archives" artifacts publishable: it applies
// the publishing capability and returns the upload task for caller
// customization. Publish must run before any artifact removal on the
// project; calling it afterwards is a configuration error. It also defers a
// check that fails evaluation when a "classes-dirs" configuration is
// present, which cannot be published.
func Publish(prj *Project) (*UploadTask, error) {
	if prj.state.ArtifactsRemoved {
		return nil, errors.New(
			"artifacts have already been removed from this project;" +
				" call Publish after the jar setup but before NoDefaultJar," +
				" CleanArtifacts or RemoveArtifacts rearrange them")
	}
	if err := prj.Apply(CapPublishing); err != nil {
		return nil, err
	}
	up, ok := prj.FindTask("uploadArchives").(*UploadTask)
	if !ok {
		return nil, fmt.Errorf("project '%s' has no upload task after applying %s",
			prj,
			CapPublishing,
		)
	}
	prj.AfterEvaluate("no-classes-dirs", func(p *Project) error {
		if p.Configurations().Find("classes-dirs") != nil {
			return fmt.Errorf(
				"project '%s' cannot be published alongside a 'classes-dirs' configuration",
				p,
			)
		}
		return nil
	})
	return up, nil
}
