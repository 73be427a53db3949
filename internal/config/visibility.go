package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/plotforge/chart3d/pkg/frame"
)

// Visibility is the yaml form of a face visibility option. Plain booleans
// force a face on or off, "auto" follows the viewer, "default" pins the
// structural default, and an absent or null key leaves the option unset.
type Visibility struct {
	Value frame.Visibility
}

// UnmarshalYAML decodes the tri-state visibility value.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!bool":
		var shown bool
		if err := node.Decode(&shown); err != nil {
			return err
		}
		if shown {
			v.Value = frame.VisibilityShown
		} else {
			v.Value = frame.VisibilityHidden
		}
		return nil
	case "!!str":
		switch node.Value {
		case "auto":
			v.Value = frame.VisibilityAuto
		case "default":
			v.Value = frame.VisibilityDefault
		case "":
			v.Value = frame.VisibilityUnset
		default:
			return fmt.Errorf("unrecognized visibility %q (want true, false, auto or default)", node.Value)
		}
		return nil
	case "!!null":
		v.Value = frame.VisibilityUnset
		return nil
	}
	return fmt.Errorf("unrecognized visibility node %s", node.Tag)
}

// MarshalYAML encodes the visibility back into its yaml form.
func (v Visibility) MarshalYAML() (interface{}, error) {
	switch v.Value {
	case frame.VisibilityShown:
		return true, nil
	case frame.VisibilityHidden:
		return false, nil
	case frame.VisibilityAuto:
		return "auto", nil
	case frame.VisibilityDefault:
		return "default", nil
	default:
		return nil, nil
	}
}
