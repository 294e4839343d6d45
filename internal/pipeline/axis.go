package pipeline

import (
	"strings"

	"matrix-normalizer/internal/common"
)

// Axis is an override axis: a settings dimension merged from defaults and
// overrides.
type Axis string

const (
	AxisFlags Axis = "flags"
	AxisEnv   Axis = "env"
)

// Suffix is the capitalized axis name. Every key ending with it is consumed
// by the axis.
func (a Axis) Suffix() string {
	return common.Capitalize(string(a))
}

// DefaultsKey returns the key holding the axis defaults, e.g. "buildFlags".
func (a Axis) DefaultsKey() string {
	return "build" + a.Suffix()
}

// GenericKey returns the key holding the override for all build types,
// e.g. "extraBuildFlags".
func (a Axis) GenericKey() string {
	return "extraBuild" + a.Suffix()
}

// BuildTypeKey returns the key holding the override for one build type,
// e.g. "extraDebugBuildFlags".
func (a Axis) BuildTypeKey(buildType string) string {
	return "extra" + common.Capitalize(buildType) + "Build" + a.Suffix()
}

// recognizes reports whether key is the defaults key or an override key for
// any build type.
func (a Axis) recognizes(key string) bool {
	if key == a.DefaultsKey() {
		return true
	}

	return strings.HasPrefix(key, "extra") && strings.HasSuffix(key, "Build"+a.Suffix())
}
