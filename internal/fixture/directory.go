// Package fixture generates a deterministic user directory served by the
// fixture server. It speaks the same page contract as the remote directory
// the dashboard is pointed at.
package fixture

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/models"
)

var (
	firstNames = []string{"Ada", "Alan", "Grace", "Edsger", "Barbara", "Donald", "Margaret", "Ken", "Frances", "Dennis", "Radia", "John"}
	lastNames  = []string{"Lovelace", "Turing", "Hopper", "Dijkstra", "Liskov", "Knuth", "Hamilton", "Thompson", "Allen", "Ritchie", "Perlman", "McCarthy"}
	programmes = []string{"Computer Science", "Mathematics", "Physics", "", "Data Engineering", "Design"}
)

// Directory is an immutable, generated list of users.
type Directory struct {
	users []models.User
}

// NewDirectory generates size users. When brokenEvery is positive, every
// brokenEvery-th user lacks "authentication.email": odd occurrences have no
// "authentication" at all, even ones an empty "authentication" object.
func NewDirectory(size, brokenEvery int) *Directory {
	if size < 0 {
		size = 0
	}

	users := make([]models.User, size)
	broken := 0
	for i := range users {
		n := i + 1
		first := firstNames[i%len(firstNames)]
		last := lastNames[(i/len(firstNames))%len(lastNames)]

		u := models.User{
			ID:               fmt.Sprintf("1700000000000x%06d", n),
			FirstName:        first,
			LastName:         last,
			MainProgramme:    programmes[i%len(programmes)],
			ProfileCompleted: n%3 == 0,
			Authentication: &models.Authentication{Email: &models.EmailAuthentication{
				Email: fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(first), strings.ToLower(last), n),
			}},
		}
		if n%4 != 0 {
			u.Mobile = fmt.Sprintf("+44 7700 %06d", n)
		}

		if brokenEvery > 0 && n%brokenEvery == 0 {
			broken++
			if broken%2 == 1 {
				u.Authentication = nil
			} else {
				u.Authentication = &models.Authentication{}
			}
		}

		users[i] = u
	}

	return &Directory{users: users}
}

// Len returns the number of users in the directory.
func (d *Directory) Len() int {
	return len(d.users)
}

// Page returns up to limit users starting at cursor. Remaining counts the
// users after the returned page. Cursor must be non-negative and limit
// positive; callers validate query input.
func (d *Directory) Page(cursor, limit int) models.Page {
	total := len(d.users)
	start := min(cursor, total)
	end := min(start+limit, total)

	results := make([]models.User, end-start)
	copy(results, d.users[start:end])

	return models.Page{
		Results:   results,
		Remaining: total - end,
		Cursor:    cursor,
	}
}
