package session

import (
	"math"
	"time"
)

// Score reveal: 60 steps of easeOutCubic over 1.5s.
const (
	RevealDuration = 1500 * time.Millisecond
	RevealSteps    = 60
)

// LoadingInterval is how long each loading message stays up.
const LoadingInterval = 3 * time.Second

var LoadingMessages = []string{
	"Reading your resume...",
	"Identifying key skills...",
	"Scanning Indian market trends...",
	"Finding high-demand roles...",
	"Drafting career flashcards...",
	"Finalizing recommendations...",
}

// ScoreReveal is the value the ATS score counter shows elapsed after the
// reveal started. It is computed on read instead of ticking a timer.
func ScoreReveal(target int, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	step := int(elapsed / (RevealDuration / RevealSteps))
	if step >= RevealSteps {
		return target
	}
	progress := float64(step) / RevealSteps
	ease := 1 - math.Pow(1-progress, 3)
	return int(math.Round(float64(target) * ease))
}

// LoadingMessage cycles through LoadingMessages while analysis runs.
func LoadingMessage(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	i := int(elapsed/LoadingInterval) % len(LoadingMessages)
	return LoadingMessages[i]
}
