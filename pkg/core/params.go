package core

import (
	"strconv"
	"time"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeDuration denotes time intervals.
	ParamTypeDuration ParamType = "duration"
	// ParamTypeText denotes free-form display values.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value shown on the HUD.
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

// ParameterSnapshot captures the values a simulation exposes for display.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// DurationParam builds a duration parameter.
func DurationParam(key, label string, value time.Duration) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeDuration, Value: value.String()}
}

// TextParam builds a display-only text parameter.
func TextParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeText, Value: value}
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}
