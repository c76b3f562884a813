package main

import (
	"errors"
	"fmt"

	"github.com/udisondev/questbot/internal/ai"
	"github.com/udisondev/questbot/internal/behavior"
	"github.com/udisondev/questbot/internal/config"
	"github.com/udisondev/questbot/internal/model"
	"github.com/udisondev/questbot/internal/quest"
	"github.com/udisondev/questbot/internal/world"
)

// buildWorld spawns configured objects and accepts configured quests.
// Interactions in the world feed quest objectives.
func buildWorld(cfg config.Bot) (*world.World, *quest.Log, error) {
	w := world.New(world.Config{
		InteractRange:      cfg.World.InteractRange,
		Speed:              cfg.World.Speed,
		Lag:                cfg.World.Lag,
		DespawnGameObjects: cfg.World.DespawnGameObjects,
	}, cfg.World.Start.Location())

	for _, s := range cfg.World.Objects {
		w.Spawn(s.Entry, s.Type, s.Name, s.Location())
	}

	quests := quest.NewLog()
	for _, q := range cfg.Quests {
		if _, err := quests.Accept(q.ID, q.Name); err != nil {
			return nil, nil, err
		}
		for _, o := range q.Objectives {
			if err := quests.AddObjective(quest.Objective{QuestID: q.ID, Entry: o.Entry, Count: o.Count}); err != nil {
				return nil, nil, err
			}
		}
	}

	w.OnInteract(func(obj *model.WorldObject) {
		quests.NotifyInteraction(obj.Entry())
	})

	return w, quests, nil
}

// buildProfile creates every configured behavior and chains them in a sequence.
// All bad entries are reported at once; nothing runs if any entry is invalid.
func buildProfile(entries []config.BehaviorEntry, deps behavior.Deps) (*ai.Sequence, error) {
	children := make([]ai.Controller, 0, len(entries))
	var errs []error
	for i, e := range entries {
		b, err := behavior.New(e.Name, e.Args, deps)
		if err != nil {
			errs = append(errs, fmt.Errorf("behaviors[%d]: %w", i, err))
			continue
		}
		children = append(children, b)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return ai.NewSequence(profileID, children...), nil
}
