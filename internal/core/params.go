package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form values such as colors.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value shown alongside a generated sprite.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the settings that produced a sprite.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines flattens the snapshot into "Label: value" lines, one group header per
// group.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		if g.Name != "" {
			out = append(out, g.Name)
		}
		for _, p := range g.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}
