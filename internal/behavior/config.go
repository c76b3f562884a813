package behavior

import (
	"strconv"

	"github.com/udisondev/questbot/internal/model"
)

// DefaultCollectionDistance is the search radius used when a profile omits CollectionDistance.
const DefaultCollectionDistance = 100

// Profile attribute names understood by InteractWith.
const (
	ArgQuestID            = "QuestId"
	ArgMobID              = "MobId"
	ArgNumOfTimes         = "NumOfTimes"
	ArgCollectionDistance = "CollectionDistance"
	ArgObjectType         = "ObjectType"
	ArgX                  = "X"
	ArgY                  = "Y"
	ArgZ                  = "Z"
)

// InteractWithConfig is the immutable configuration of one InteractWith run.
type InteractWithConfig struct {
	QuestID            uint32
	MobID              uint32 // template entry of the objects to interact with
	NumOfTimes         int
	CollectionDistance float64
	ObjectType         model.ObjectType
	// Location is the area where the objects are expected. Carried for profiles and
	// status output only; target selection does not filter on it.
	Location model.Location
}

// Validate checks invariants of an already-typed config.
func (c InteractWithConfig) Validate() error {
	cerr := &ConfigError{Behavior: InteractWithName}
	if c.NumOfTimes < 0 {
		cerr.add(ArgNumOfTimes, "must not be negative", nil)
	}
	if c.CollectionDistance <= 0 {
		cerr.add(ArgCollectionDistance, "must be positive", nil)
	}
	if c.ObjectType != model.ObjectTypeNpc && c.ObjectType != model.ObjectTypeGameObject {
		cerr.add(ArgObjectType, "unknown object type", nil)
	}
	return cerr.errOrNil()
}

// Filter returns the target selection filter for this config.
func (c InteractWithConfig) Filter() TargetFilter {
	return TargetFilter{
		Type:        c.ObjectType,
		Entry:       c.MobID,
		MaxDistance: c.CollectionDistance,
	}
}

// ParseInteractWithArgs converts profile attributes into a config.
// All missing and unparsable attributes are reported together in a *ConfigError.
// CollectionDistance is optional: absent, zero or unparsable falls back to the default.
func ParseInteractWithArgs(args map[string]string) (InteractWithConfig, error) {
	cerr := &ConfigError{Behavior: InteractWithName}
	cfg := InteractWithConfig{CollectionDistance: DefaultCollectionDistance}

	cfg.QuestID = parseUint32(args, ArgQuestID, cerr)
	cfg.MobID = parseUint32(args, ArgMobID, cerr)

	if raw, ok := args[ArgNumOfTimes]; !ok {
		cerr.add(ArgNumOfTimes, "missing", nil)
	} else if n, err := strconv.Atoi(raw); err != nil {
		cerr.add(ArgNumOfTimes, "invalid value "+strconv.Quote(raw), err)
	} else {
		cfg.NumOfTimes = n
	}

	if raw, ok := args[ArgCollectionDistance]; ok {
		if d, err := strconv.Atoi(raw); err == nil && d != 0 {
			cfg.CollectionDistance = float64(d)
		}
	}

	if raw, ok := args[ArgObjectType]; !ok {
		cerr.add(ArgObjectType, "missing", nil)
	} else if t, err := model.ParseObjectType(raw); err != nil {
		cerr.add(ArgObjectType, "invalid value "+strconv.Quote(raw), err)
	} else {
		cfg.ObjectType = t
	}

	x := parseFloat(args, ArgX, cerr)
	y := parseFloat(args, ArgY, cerr)
	z := parseFloat(args, ArgZ, cerr)
	cfg.Location = model.NewLocation(x, y, z)

	if err := cerr.errOrNil(); err != nil {
		return InteractWithConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return InteractWithConfig{}, err
	}
	return cfg, nil
}

func parseUint32(args map[string]string, key string, cerr *ConfigError) uint32 {
	raw, ok := args[key]
	if !ok {
		cerr.add(key, "missing", nil)
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		cerr.add(key, "invalid value "+strconv.Quote(raw), err)
		return 0
	}
	return uint32(v)
}

func parseFloat(args map[string]string, key string, cerr *ConfigError) float64 {
	raw, ok := args[key]
	if !ok {
		cerr.add(key, "missing", nil)
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		cerr.add(key, "invalid value "+strconv.Quote(raw), err)
		return 0
	}
	return v
}
