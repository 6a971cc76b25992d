package models

// Project is a purely organizational grouping with no effect on progression.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// FindProject resolves a project id against the collection, nil when dangling.
func FindProject(projects []Project, id string) *Project {
	if id == "" {
		return nil
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i]
		}
	}
	return nil
}
