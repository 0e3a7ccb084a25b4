package services

import "github.com/localnerve/daycare-data/internal/models"

// Display name selectors for batch reference resolution

func childName(c models.Child, _ string) string {
	return c.DisplayName()
}

func staffName(s models.Staff, _ string) string {
	return s.DisplayName()
}

func centerName(c models.Center, _ string) string {
	return c.Name
}

// className falls back to the class id when the class has no name
func className(c models.Class, id string) string {
	if c.Name == "" {
		return id
	}
	return c.Name
}

func classDisplayName(c models.Class, _ string) string {
	return c.Name
}
