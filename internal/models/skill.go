package models

// Skill is a user-defined, independently leveling counter. Its level/progress
// pair is unrelated to the character's five fixed stats.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Progress int    `json:"progress"`
	Color    string `json:"color,omitempty"`
}

// FindSkill resolves a skill id against the collection, nil when dangling.
func FindSkill(skills []Skill, id string) *Skill {
	if id == "" {
		return nil
	}
	for i := range skills {
		if skills[i].ID == id {
			return &skills[i]
		}
	}
	return nil
}
