package category

import (
	"fmt"
	"strings"
	"time"
)

// MetricType is the semantic unit of a record's value. It determines sort
// direction and display formatting, and must never change once records exist
// against the category.
type MetricType string

const (
	MetricTime  MetricType = "time"
	MetricCount MetricType = "count"
	MetricScore MetricType = "score"
)

func ParseMetricType(v string) (MetricType, error) {
	switch MetricType(strings.ToLower(strings.TrimSpace(v))) {
	case MetricTime:
		return MetricTime, nil
	case MetricCount:
		return MetricCount, nil
	case MetricScore:
		return MetricScore, nil
	default:
		return "", fmt.Errorf("invalid metric type %q: valid values are %s, %s, %s", v, MetricTime, MetricCount, MetricScore)
	}
}

// LowerIsBetter reports the sort direction for the metric: elapsed time ranks
// ascending, counts and scores rank descending.
func (m MetricType) LowerIsBetter() bool {
	return m == MetricTime
}

// Category is a ranked leaderboard within a gamemode.
type Category struct {
	ID              string
	GamemodeID      string
	Name            string
	MetricType      MetricType
	Rules           string
	DifficultyLevel string
	EstimatedEffort string
	IsActive        bool
	CreatedAt       time.Time
}

func (c Category) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("category id is required")
	}
	if c.GamemodeID == "" {
		return fmt.Errorf("category gamemode id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("category name is required")
	}
	if _, err := ParseMetricType(string(c.MetricType)); err != nil {
		return err
	}

	return nil
}
