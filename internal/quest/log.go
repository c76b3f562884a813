package quest

import (
	"fmt"
	"log/slog"
	"sync"
)

// Objective completes a quest after Count interactions with objects of template Entry.
type Objective struct {
	QuestID uint32
	Entry   uint32
	Count   int
}

// Log is the agent's quest log.
// Safe for concurrent use: the world goroutine completes quests
// while behaviors read statuses from the tick goroutine.
type Log struct {
	mu         sync.RWMutex
	quests     map[uint32]*QuestState
	objectives map[uint32][]Objective // entry → objectives fed by it
}

// NewLog creates an empty quest log.
func NewLog() *Log {
	return &Log{
		quests:     make(map[uint32]*QuestState),
		objectives: make(map[uint32][]Objective),
	}
}

// Accept adds a started quest to the log. Returns error if it is already there.
func (l *Log) Accept(questID uint32, name string) (*QuestState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.quests[questID]; exists {
		return nil, fmt.Errorf("quest %d already in log", questID)
	}
	qs := NewQuestState(questID, name, StateStarted)
	l.quests[questID] = qs

	slog.Debug("quest accepted", "questID", questID, "name", name)
	return qs, nil
}

// Get returns the quest state, or nil if the quest is not in the log.
func (l *Log) Get(questID uint32) *QuestState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.quests[questID]
}

// Remove drops the quest from the log (abandon or turn-in).
func (l *Log) Remove(questID uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.quests, questID)
}

// Complete marks the quest objectives as done.
func (l *Log) Complete(questID uint32) error {
	qs := l.Get(questID)
	if qs == nil {
		return fmt.Errorf("quest %d not in log", questID)
	}
	qs.SetState(StateCompleted)
	slog.Info("quest completed", "questID", questID, "name", qs.QuestName(), "vars", qs.Vars())
	return nil
}

// Status returns the quest status as seen by behaviors.
func (l *Log) Status(questID uint32) Status {
	qs := l.Get(questID)
	switch {
	case qs == nil:
		return StatusNotFound
	case qs.IsCompleted():
		return StatusCompleted
	default:
		return StatusActive
	}
}

// QuestName returns quest name if the quest is in the log.
func (l *Log) QuestName(questID uint32) (string, bool) {
	qs := l.Get(questID)
	if qs == nil {
		return "", false
	}
	return qs.QuestName(), true
}

// AddObjective registers an interaction objective.
func (l *Log) AddObjective(obj Objective) error {
	if obj.Count <= 0 {
		return fmt.Errorf("objective for quest %d: count must be positive, got %d", obj.QuestID, obj.Count)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.objectives[obj.Entry] = append(l.objectives[obj.Entry], obj)
	return nil
}

// NotifyInteraction advances every active quest whose objective is fed by entry.
// Completes the quest once cond reaches the objective count.
func (l *Log) NotifyInteraction(entry uint32) {
	l.mu.RLock()
	objectives := l.objectives[entry]
	l.mu.RUnlock()

	for _, obj := range objectives {
		qs := l.Get(obj.QuestID)
		if qs == nil || qs.IsCompleted() {
			continue
		}
		cond := qs.IncCond()
		slog.Debug("quest objective progressed",
			"questID", obj.QuestID,
			"entry", entry,
			"cond", cond,
			"need", obj.Count)
		if cond >= obj.Count {
			_ = l.Complete(obj.QuestID)
		}
	}
}

// Count returns number of quests in the log.
func (l *Log) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.quests)
}
