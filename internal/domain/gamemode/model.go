package gamemode

import (
	"fmt"
	"time"
)

// Gamemode is a game title that categories hang off. Identity is immutable;
// only IsActive is toggled after creation.
type Gamemode struct {
	ID          string
	Name        string
	Slug        string
	Icon        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

func (g Gamemode) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("gamemode id is required")
	}
	if g.Name == "" {
		return fmt.Errorf("gamemode name is required")
	}
	if g.Slug == "" {
		return fmt.Errorf("gamemode slug is required")
	}

	return nil
}
