package filter

import (
	"strings"

	"geowatch/internal/domain/entity"
)

// MatchesQuest reports whether the quest's derived reward keyword
// contains the entry's configured keyword, case-insensitively. An empty
// configured keyword never matches.
func MatchesQuest(ev *entity.QuestEvent, f *entity.QuestFilter) bool {
	if f.RewardKeyword == "" {
		return false
	}

	return strings.Contains(strings.ToLower(ev.RewardKeyword), strings.ToLower(f.RewardKeyword))
}
