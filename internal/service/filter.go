package service

import (
	"strings"

	"github.com/MKhiriev/go-user-dashboard/models"
)

// FilterUsers keeps the users whose first name, last name or email contains
// term, ignoring case. Order is preserved. An empty term returns users
// unchanged.
func FilterUsers(users []models.User, term string) []models.User {
	if term == "" {
		return users
	}

	needle := strings.ToLower(term)
	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if containsFold(u.FirstName, needle) ||
			containsFold(u.LastName, needle) ||
			containsFold(u.Email(), needle) {
			filtered = append(filtered, u)
		}
	}

	return filtered
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
