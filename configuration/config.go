// Package configuration loads logging-policy overrides from JSON.
//
// It backs the policy store with static configuration, for deployments
// where overrides are operational settings rather than code. The loaded
// store is a plain diaglog.Registry, so file-based and programmatic
// overrides compose freely.
package configuration

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/countincognito/diaglog"
	"github.com/countincognito/diaglog/core"
)

// PolicyConfiguration represents the JSON policy document.
type PolicyConfiguration struct {
	Types []TypePolicy `json:"Types,omitempty"`
}

// TypePolicy holds the overrides attached to one target type.
type TypePolicy struct {
	Namespace string         `json:"Namespace"`
	Name      string         `json:"Name"`
	Active    string         `json:"Active,omitempty"`
	Methods   []MethodPolicy `json:"Methods,omitempty"`
}

// MethodPolicy holds the overrides attached to one method.
type MethodPolicy struct {
	Name        string            `json:"Name"`
	Active      string            `json:"Active,omitempty"`
	Parameters  []ParameterPolicy `json:"Parameters,omitempty"`
	ReturnValue *ReturnPolicy     `json:"ReturnValue,omitempty"`
}

// ParameterPolicy holds the override attached to one parameter position.
type ParameterPolicy struct {
	Position int    `json:"Position"`
	Active   string `json:"Active"`
}

// ReturnPolicy holds the override attached to the return slot.
type ReturnPolicy struct {
	Active string `json:"Active"`
}

// Configuration is the root configuration object.
type Configuration struct {
	Diaglog PolicyConfiguration `json:"Diaglog"`
}

// LoadFromFile loads a policy registry from a JSON file.
func LoadFromFile(filename string) (*diaglog.Registry, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromJSON(data)
}

// LoadFromJSON loads a policy registry from JSON data.
func LoadFromJSON(data []byte) (*diaglog.Registry, error) {
	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return config.BuildRegistry()
}

// BuildRegistry converts the parsed document into a policy registry.
// An empty or omitted Active field means no override at that scope;
// any other value must parse as a logging state.
func (c *Configuration) BuildRegistry() (*diaglog.Registry, error) {
	reg := diaglog.NewRegistry()

	for _, tp := range c.Diaglog.Types {
		t := core.TypeInfo{Namespace: tp.Namespace, Name: tp.Name}
		if tp.Name == "" {
			return nil, fmt.Errorf("type entry missing Name (namespace %q)", tp.Namespace)
		}

		if tp.Active != "" {
			state, err := ParseActive(tp.Active)
			if err != nil {
				return nil, fmt.Errorf("type %s.%s: %w", tp.Namespace, tp.Name, err)
			}
			reg.SetTypeOverride(t, state)
		}

		for _, mp := range tp.Methods {
			if mp.Name == "" {
				return nil, fmt.Errorf("type %s.%s: method entry missing Name", tp.Namespace, tp.Name)
			}

			if mp.Active != "" {
				state, err := ParseActive(mp.Active)
				if err != nil {
					return nil, fmt.Errorf("method %s.%s.%s: %w", tp.Namespace, tp.Name, mp.Name, err)
				}
				reg.SetMethodOverride(t, mp.Name, state)
			}

			for _, pp := range mp.Parameters {
				state, err := ParseActive(pp.Active)
				if err != nil {
					return nil, fmt.Errorf("parameter %d of %s.%s.%s: %w", pp.Position, tp.Namespace, tp.Name, mp.Name, err)
				}
				reg.SetParameterOverride(t, mp.Name, pp.Position, state)
			}

			if mp.ReturnValue != nil {
				state, err := ParseActive(mp.ReturnValue.Active)
				if err != nil {
					return nil, fmt.Errorf("return slot of %s.%s.%s: %w", tp.Namespace, tp.Name, mp.Name, err)
				}
				reg.SetReturnOverride(t, mp.Name, state)
			}
		}
	}

	return reg, nil
}

// ParseActive parses a logging-state string.
func ParseActive(s string) (core.LogActive, error) {
	switch strings.ToLower(s) {
	case "on", "true":
		return core.LogActiveOn, nil
	case "off", "false":
		return core.LogActiveOff, nil
	default:
		return core.LogActiveOff, fmt.Errorf("unknown logging state: %s", s)
	}
}
