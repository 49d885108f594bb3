// Package mkmeta loads the shared build metadata of a jarmk project tree:
// vendor, title and the build number that stamps every public jar. The
// metadata lives in a TOML file next to the root project and is stored as
// root-project properties where [jarkore.SetupPublicJar] picks it up.
package mkmeta

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"git.fractalqb.de/fractalqb/jarmk/jarkore"
)

// File is the conventional name of the metadata file in the root project
// directory.
const File = "jarmk.toml"

type Info struct {
	Vendor      string `toml:"vendor"`
	Title       string `toml:"title"`
	BuildNumber string `toml:"build-number"`
}

// Load reads build metadata from the TOML file. Keys that do not belong to
// the metadata are an error, not a warning.
func Load(file string) (*Info, error) {
	var nfo Info
	meta, err := toml.DecodeFile(file, &nfo)
	if err != nil {
		return nil, fmt.Errorf("build metadata %s: %w", file, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("build metadata %s: unknown keys: %s",
			file,
			strings.Join(keys, ", "),
		)
	}
	return &nfo, nil
}

// LoadProject reads the conventional metadata file from prj's root project
// directory.
func LoadProject(prj *jarkore.Project) (*Info, error) {
	return Load(filepath.Join(prj.Root().Dir, File))
}

// ApplyTo stores the metadata as properties of prj's root project. Empty
// fields leave the respective property untouched.
func (nfo *Info) ApplyTo(prj *jarkore.Project) {
	root := prj.Root()
	if nfo.Vendor != "" {
		root.SetProp(jarkore.PropVendor, nfo.Vendor)
	}
	if nfo.Title != "" {
		root.SetProp(jarkore.PropTitle, nfo.Title)
	}
	if nfo.BuildNumber != "" {
		root.SetProp(jarkore.PropBuildNumber, nfo.BuildNumber)
	}
}
