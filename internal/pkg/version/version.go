package version

import (
	_ "embed"
	"fmt"
	"runtime/debug"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && printf clean > dirty.txt || printf dirty > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

const unknown = "unknown"

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// String renders the info on one line for start-up logs.
func (i gitInfo) String() string {
	s := fmt.Sprintf("%s (%s@%s)", i.Tag, i.Branch, shortCommit(i.Commit))
	if i.Dirty {
		s += " dirty"
	}
	return s
}

var info = resolve(commit, branch, tag, dirty, debug.ReadBuildInfo)

// resolve trims the embedded values and, when the tree was built without go generate,
// falls back to the VCS stamp the go toolchain records in the binary.
func resolve(commit, branch, tag, dirty string, readBuildInfo func() (*debug.BuildInfo, bool)) gitInfo {
	i := gitInfo{
		Commit: strings.TrimSpace(commit),
		Branch: strings.TrimSpace(branch),
		Tag:    strings.TrimSpace(tag),
		Dirty:  strings.TrimSpace(dirty) == "dirty",
	}
	if i.Commit != "" && i.Commit != unknown {
		return i
	}

	i.Commit = unknown
	if i.Branch == "" {
		i.Branch = unknown
	}
	if i.Tag == "" {
		i.Tag = "none"
	}
	bi, ok := readBuildInfo()
	if !ok {
		return i
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}

// GetGitInfo returns a copy of the gitInfo struct containing git metadata.
func GetGitInfo() gitInfo {
	return info
}
