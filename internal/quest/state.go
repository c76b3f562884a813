package quest

import (
	"maps"
	"strconv"
	"sync"
)

// State constants of a quest log entry.
const (
	StateStarted   byte = 1
	StateCompleted byte = 2
)

// ReservedVarCond is the variable name for quest cond (progress step).
const ReservedVarCond = "<state>"

// QuestState tracks the agent's progress in a specific quest.
// Variables stored as map[string]string. Thread-safe via mutex.
type QuestState struct {
	mu sync.RWMutex

	questID   uint32
	questName string
	state     byte
	vars      map[string]string
}

// NewQuestState creates a quest state for the given quest.
func NewQuestState(questID uint32, questName string, state byte) *QuestState {
	return &QuestState{
		questID:   questID,
		questName: questName,
		state:     state,
		vars:      make(map[string]string, 4),
	}
}

// QuestID returns the quest identifier.
func (qs *QuestState) QuestID() uint32 {
	return qs.questID
}

// QuestName returns the quest name.
func (qs *QuestState) QuestName() string {
	return qs.questName
}

// SetState updates the quest state.
func (qs *QuestState) SetState(state byte) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.state = state
}

// IsCompleted returns true if quest objectives are done.
func (qs *QuestState) IsCompleted() bool {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	return qs.state == StateCompleted
}

// GetCond returns the quest progress step (cond variable).
func (qs *QuestState) GetCond() int {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	n, err := strconv.Atoi(qs.vars[ReservedVarCond])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// IncCond increments cond and returns the new value.
func (qs *QuestState) IncCond() int {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	n, err := strconv.Atoi(qs.vars[ReservedVarCond])
	if err != nil || n < 0 {
		n = 0
	}
	n++
	qs.vars[ReservedVarCond] = strconv.Itoa(n)
	return n
}

// Vars returns a snapshot of all variables (copy).
func (qs *QuestState) Vars() map[string]string {
	qs.mu.RLock()
	defer qs.mu.RUnlock()
	snapshot := make(map[string]string, len(qs.vars))
	maps.Copy(snapshot, qs.vars)
	return snapshot
}
