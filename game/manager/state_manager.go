package manager

import (
	"time"

	"tile-snake/game/types"

	"github.com/google/uuid"
)

// RoundSummary describes a finished round.
type RoundSummary struct {
	ID       string
	Score    int
	Won      bool
	Started  time.Time
	Duration time.Duration
}

// StateManager keeps round lifecycle and in-memory score bookkeeping.
type StateManager struct {
	state        types.RoundState
	roundID      string
	started      time.Time
	ended        bool
	score        int
	highScore    int
	scoreHistory []int
	rounds       []RoundSummary
	now          func() time.Time
}

func NewStateManager(now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{
		state:        types.Stopped,
		scoreHistory: make([]int, 0),
		now:          now,
	}
}

// BeginRound resets the per-round counters and assigns a fresh round ID.
func (sm *StateManager) BeginRound() string {
	sm.roundID = uuid.New().String()
	sm.started = sm.now()
	sm.ended = false
	sm.score = 0
	return sm.roundID
}

// EndRound closes the current round and records its score.
func (sm *StateManager) EndRound(won bool) RoundSummary {
	sm.ended = true
	sm.AddToHistory(sm.score)
	summary := RoundSummary{
		ID:       sm.roundID,
		Score:    sm.score,
		Won:      won,
		Started:  sm.started,
		Duration: sm.now().Sub(sm.started),
	}
	if len(sm.rounds) >= types.MaxScores {
		sm.rounds = sm.rounds[1:]
	}
	sm.rounds = append(sm.rounds, summary)
	return summary
}

// Stats summarizes the rounds still in the history window.
func (sm *StateManager) Stats() ScoreStats {
	return computeStats(sm.rounds)
}

// Ended reports whether the round is over and waiting for a reset.
func (sm *StateManager) Ended() bool {
	return sm.ended
}

func (sm *StateManager) SetState(s types.RoundState) {
	sm.state = s
}

func (sm *StateManager) State() types.RoundState {
	return sm.state
}

func (sm *StateManager) RoundID() string {
	return sm.roundID
}

// RecordFood bumps the round score and returns it.
func (sm *StateManager) RecordFood() int {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
	return sm.score
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) AddToHistory(score int) {
	if len(sm.scoreHistory) >= types.MaxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetScoreHistory returns a copy of the most recent round scores, oldest first.
func (sm *StateManager) GetScoreHistory() []int {
	out := make([]int, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}
