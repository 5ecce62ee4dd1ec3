package store

import (
	"cmp"
	"slices"
)

// DefaultLeaderboardSize is the number of rows shown when no limit is given.
const DefaultLeaderboardSize = 5

// ComputeLeaderboard ranks players by their best saved score. Each player
// name appears once, with the score, phase and date of their best game.
// Equal scores are ordered by the earlier game, then by name. A limit of
// zero or less returns every player.
func ComputeLeaderboard(games []*SavedGame, limit int) []LeaderboardEntry {
	best := make(map[string]*SavedGame)
	for _, g := range games {
		cur, ok := best[g.PlayerName]
		if !ok || g.Score > cur.Score ||
			(g.Score == cur.Score && g.LastPlayedAt.Before(cur.LastPlayedAt)) {
			best[g.PlayerName] = g
		}
	}

	entries := make([]LeaderboardEntry, 0, len(best))
	for name, g := range best {
		entries = append(entries, LeaderboardEntry{
			PlayerName:   name,
			Score:        g.Score,
			HighestPhase: g.HighestPhase(),
			GameID:       g.ID,
			PlayedAt:     g.LastPlayedAt,
		})
	}

	slices.SortFunc(entries, func(a, b LeaderboardEntry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := a.PlayedAt.Compare(b.PlayedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerName, b.PlayerName)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
