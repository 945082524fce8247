package memory

import (
	"time"

	"github.com/lifeboat-community/leaderboard-api/internal/domain/category"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/gamemode"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/profile"
	"github.com/lifeboat-community/leaderboard-api/internal/domain/record"
)

const (
	GamemodeIDSkyWars  = "gm-skywars"
	GamemodeIDBedWars  = "gm-bedwars"
	GamemodeIDParkour  = "gm-parkour"
	GamemodeIDSurvival = "gm-survival-games"

	CategoryIDSkyWarsSpeedrun = "cat-skywars-solo-speedrun"
	CategoryIDSkyWarsWins     = "cat-skywars-lifetime-wins"
	CategoryIDBedWarsStreak   = "cat-bedwars-win-streak"
	CategoryIDParkourMainRun  = "cat-parkour-main-course"
	CategoryIDSurvivalScore   = "cat-survival-games-score"

	ProfileIDAdmin     = "seed-admin"
	ProfileIDModerator = "seed-moderator"
)

func seedTime(day int, hour int) time.Time {
	return time.Date(2026, 6, day, hour, 0, 0, 0, time.UTC)
}

func SeedGamemodes() []gamemode.Gamemode {
	return []gamemode.Gamemode{
		{ID: GamemodeIDSkyWars, Name: "SkyWars", Slug: "skywars", Icon: "sword", Description: "Island combat, last player standing wins.", IsActive: true, CreatedAt: seedTime(1, 8)},
		{ID: GamemodeIDBedWars, Name: "BedWars", Slug: "bedwars", Icon: "bed", Description: "Defend your bed, break everyone else's.", IsActive: true, CreatedAt: seedTime(1, 8)},
		{ID: GamemodeIDParkour, Name: "Parkour", Slug: "parkour", Icon: "boots", Description: "Timed obstacle courses.", IsActive: true, CreatedAt: seedTime(1, 9)},
		{ID: GamemodeIDSurvival, Name: "Survival Games", Slug: "survival-games", Icon: "bow", Description: "Arena survival with scavenged gear.", IsActive: true, CreatedAt: seedTime(1, 9)},
	}
}

func SeedCategories() []category.Category {
	return []category.Category{
		{
			ID:              CategoryIDSkyWarsSpeedrun,
			GamemodeID:      GamemodeIDSkyWars,
			Name:            "Solo Speedrun",
			MetricType:      category.MetricTime,
			Rules:           "Solo queue, no party members in the lobby. Timer runs from cage drop to final kill.",
			DifficultyLevel: "hard",
			EstimatedEffort: "weeks",
			IsActive:        true,
			CreatedAt:       seedTime(2, 10),
		},
		{
			ID:              CategoryIDSkyWarsWins,
			GamemodeID:      GamemodeIDSkyWars,
			Name:            "Lifetime Wins",
			MetricType:      category.MetricCount,
			Rules:           "Stat page screenshot plus a recent winning game on video.",
			DifficultyLevel: "medium",
			EstimatedEffort: "months",
			IsActive:        true,
			CreatedAt:       seedTime(2, 10),
		},
		{
			ID:              CategoryIDBedWarsStreak,
			GamemodeID:      GamemodeIDBedWars,
			Name:            "Win Streak",
			MetricType:      category.MetricCount,
			Rules:           "Consecutive wins without leaving the queue. Full session VOD required.",
			DifficultyLevel: "hard",
			EstimatedEffort: "days",
			IsActive:        true,
			CreatedAt:       seedTime(2, 11),
		},
		{
			ID:              CategoryIDParkourMainRun,
			GamemodeID:      GamemodeIDParkour,
			Name:            "Main Course Any%",
			MetricType:      category.MetricTime,
			Rules:           "No checkpoint skips. Timer overlay visible for the whole run.",
			DifficultyLevel: "medium",
			EstimatedEffort: "days",
			IsActive:        true,
			CreatedAt:       seedTime(3, 9),
		},
		{
			ID:              CategoryIDSurvivalScore,
			GamemodeID:      GamemodeIDSurvival,
			Name:            "Single Game Score",
			MetricType:      category.MetricScore,
			Rules:           "Score as shown on the end-of-game summary screen.",
			DifficultyLevel: "easy",
			EstimatedEffort: "hours",
			IsActive:        true,
			CreatedAt:       seedTime(3, 9),
		},
	}
}

func SeedProfiles() []profile.Profile {
	return []profile.Profile{
		{ID: ProfileIDAdmin, Username: "HarborMaster", Role: profile.RoleAdmin, Bio: "Keeps the lights on.", CreatedAt: seedTime(1, 7)},
		{ID: ProfileIDModerator, Username: "VODWatcher", Role: profile.RoleModerator, Bio: "Frame-by-frame or it didn't happen.", CreatedAt: seedTime(1, 7)},
		{ID: "seed-player-ender", Username: "EnderQueen", Role: profile.RolePlayer, CreatedAt: seedTime(4, 12)},
		{ID: "seed-player-block", Username: "BlockHopper", Role: profile.RolePlayer, CreatedAt: seedTime(4, 13)},
		{ID: "seed-player-nether", Username: "NetherNate", Role: profile.RolePlayer, CreatedAt: seedTime(4, 14)},
	}
}

// SeedRecords gives a fresh memory store a populated leaderboard and a
// non-empty moderation queue.
func SeedRecords() []record.Record {
	verifiedAt := seedTime(10, 16)

	return []record.Record{
		{
			ID:         "seed-rec-speedrun-1",
			UserID:     "seed-player-ender",
			CategoryID: CategoryIDSkyWarsSpeedrun,
			Value:      102.5,
			ProofURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Status:     record.StatusApproved,
			VerifiedBy: ProfileIDModerator,
			VerifiedAt: &verifiedAt,
			CreatedAt:  seedTime(8, 9),
		},
		{
			ID:         "seed-rec-speedrun-2",
			UserID:     "seed-player-block",
			CategoryID: CategoryIDSkyWarsSpeedrun,
			Value:      98.2,
			ProofURL:   "https://youtu.be/dQw4w9WgXcQ",
			Status:     record.StatusApproved,
			VerifiedBy: ProfileIDModerator,
			VerifiedAt: &verifiedAt,
			CreatedAt:  seedTime(9, 15),
		},
		{
			ID:         "seed-rec-wins-1",
			UserID:     "seed-player-nether",
			CategoryID: CategoryIDSkyWarsWins,
			Value:      1500,
			ProofURL:   "https://youtu.be/dQw4w9WgXcQ",
			Status:     record.StatusApproved,
			VerifiedBy: ProfileIDModerator,
			VerifiedAt: &verifiedAt,
			CreatedAt:  seedTime(9, 18),
		},
		{
			ID:         "seed-rec-pending-1",
			UserID:     "seed-player-ender",
			CategoryID: CategoryIDParkourMainRun,
			Value:      61.337,
			ProofURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Status:     record.StatusPending,
			Notes:      "New personal best, skip at 0:41 is within the rules.",
			CreatedAt:  seedTime(11, 20),
		},
	}
}
