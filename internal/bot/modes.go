package bot

import (
	"barbot/core/telegram/state"
	"barbot/internal/quiz"
)

// Conversation modes. A user is in at most one; the search and game modes
// capture all their text until they leave.
const (
	ModeSearch      state.Mode = "search"
	ModeQuiz        state.Mode = "quiz"
	ModeTruth       state.Mode = "truth"
	ModeAssoc       state.Mode = "assoc"
	ModeBlitz       state.Mode = "blitz"
	ModeAdminLookup state.Mode = "admin_lookup"
)

var kindModes = map[quiz.Kind]state.Mode{
	quiz.KindTest:  ModeQuiz,
	quiz.KindTruth: ModeTruth,
	quiz.KindAssoc: ModeAssoc,
	quiz.KindBlitz: ModeBlitz,
}

func modeForKind(kind quiz.Kind) state.Mode {
	if m, ok := kindModes[kind]; ok {
		return m
	}
	return ModeQuiz
}
