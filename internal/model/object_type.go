package model

import (
	"fmt"
	"strings"
)

// ObjectType is the world object category a behavior targets.
type ObjectType int32

const (
	// ObjectTypeNpc - creatures and other units
	ObjectTypeNpc ObjectType = iota
	// ObjectTypeGameObject - static interactable objects (chests, herbs, levers)
	ObjectTypeGameObject
)

// String returns human-readable object type name
func (t ObjectType) String() string {
	switch t {
	case ObjectTypeNpc:
		return "Npc"
	case ObjectTypeGameObject:
		return "Gameobject"
	default:
		return "Unknown"
	}
}

// ParseObjectType parses a profile object type name, ignoring case.
func ParseObjectType(s string) (ObjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "npc":
		return ObjectTypeNpc, nil
	case "gameobject":
		return ObjectTypeGameObject, nil
	default:
		return 0, fmt.Errorf("unknown object type %q (expected Npc or Gameobject)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so object types can be read from YAML.
func (t *ObjectType) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t ObjectType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
