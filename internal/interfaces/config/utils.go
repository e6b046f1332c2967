// Package config
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/half-nothing/simple-booking/internal/interfaces/global"
	"github.com/half-nothing/simple-booking/internal/utils"
)

var (
	ConfVersion, _ = newVersion(global.ConfigVersion)
	AppVersion, _  = newVersion(global.AppVersion)
)

func checkPort(port uint) *ValidResult {
	if port <= 0 {
		return ValidFail(errors.New("port must be greater than zero"))
	}
	if port > 65535 {
		return ValidFail(errors.New("port must be less than 65535"))
	}
	if port < 1024 {
		return ValidFail(fmt.Errorf("the %d port may have a special usage, use it with caution", port))
	}
	return ValidPass()
}

type checkVersionResult int

const (
	AllMatch checkVersionResult = iota
	MajorUnmatch
	MinorUnmatch
	PatchUnmatch
)

type version struct {
	major int
	minor int
	patch int
}

func newVersion(versionString string) (*version, error) {
	parts := strings.SplitN(versionString, ".", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid version string %q", versionString)
	}
	major := utils.StrToInt(parts[0], -1)
	minor := utils.StrToInt(parts[1], -1)
	patch := utils.StrToInt(parts[2], -1)
	if major < 0 || minor < 0 || patch < 0 {
		return nil, fmt.Errorf("invalid version string %q", versionString)
	}
	return &version{major: major, minor: minor, patch: patch}, nil
}

func (v *version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v *version) checkVersion(other *version) checkVersionResult {
	if v.major != other.major {
		return MajorUnmatch
	}
	if v.minor != other.minor {
		return MinorUnmatch
	}
	if v.patch != other.patch {
		return PatchUnmatch
	}
	return AllMatch
}
