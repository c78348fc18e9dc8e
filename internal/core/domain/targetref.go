package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TargetRef is a parsed symbolic target reference of the form
// project:target[:configuration].
type TargetRef struct {
	Project       string
	Target        string
	Configuration string
}

// String renders the reference back to its symbolic form.
func (r TargetRef) String() string {
	s := r.Project + ":" + r.Target
	if r.Configuration != "" {
		s += ":" + r.Configuration
	}
	return s
}

// ParseTargetRef parses a symbolic target reference. A reference with a
// single segment is treated as a bare target name resolved against
// defaultProject, which is the project currently being served.
func ParseTargetRef(ref, defaultProject string) (TargetRef, error) {
	parts := strings.Split(ref, ":")
	switch len(parts) {
	case 1:
		if parts[0] == "" || defaultProject == "" {
			return TargetRef{}, zerr.With(ErrInvalidTargetRef, "ref", ref)
		}
		return TargetRef{Project: defaultProject, Target: parts[0]}, nil
	case 2:
		if parts[0] == "" || parts[1] == "" {
			return TargetRef{}, zerr.With(ErrInvalidTargetRef, "ref", ref)
		}
		return TargetRef{Project: parts[0], Target: parts[1]}, nil
	case 3:
		if parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return TargetRef{}, zerr.With(ErrInvalidTargetRef, "ref", ref)
		}
		return TargetRef{Project: parts[0], Target: parts[1], Configuration: parts[2]}, nil
	default:
		return TargetRef{}, zerr.With(ErrInvalidTargetRef, "ref", ref)
	}
}
