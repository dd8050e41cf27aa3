package fixture

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-user-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirectory_Deterministic(t *testing.T) {
	a := NewDirectory(50, 0)
	b := NewDirectory(50, 0)

	assert.Equal(t, 50, a.Len())
	assert.Equal(t, a.Page(0, 50), b.Page(0, 50))
}

func TestNewDirectory_NegativeSize(t *testing.T) {
	assert.Equal(t, 0, NewDirectory(-5, 0).Len())
}

func TestNewDirectory_AllHaveEmailWithoutBroken(t *testing.T) {
	page := NewDirectory(30, 0).Page(0, 30)
	for _, u := range page.Results {
		assert.True(t, u.HasEmailAuthentication(), u.ID)
		assert.NotEmpty(t, u.Email())
	}
}

func TestNewDirectory_BrokenEvery(t *testing.T) {
	page := NewDirectory(20, 5).Page(0, 20)

	var broken []int
	for i, u := range page.Results {
		if !u.HasEmailAuthentication() {
			broken = append(broken, i+1)
		}
	}
	assert.Equal(t, []int{5, 10, 15, 20}, broken)

	assert.Nil(t, page.Results[4].Authentication)
	require.NotNil(t, page.Results[9].Authentication)
	assert.Nil(t, page.Results[9].Authentication.Email)
}

func TestDirectory_Page(t *testing.T) {
	d := NewDirectory(250, 0)

	tests := []struct {
		name          string
		cursor        int
		limit         int
		wantLen       int
		wantRemaining int
	}{
		{name: "first page", cursor: 0, limit: 100, wantLen: 100, wantRemaining: 150},
		{name: "middle page", cursor: 100, limit: 100, wantLen: 100, wantRemaining: 50},
		{name: "last page", cursor: 200, limit: 100, wantLen: 50, wantRemaining: 0},
		{name: "past the end", cursor: 400, limit: 100, wantLen: 0, wantRemaining: 0},
		{name: "unaligned cursor", cursor: 30, limit: 100, wantLen: 100, wantRemaining: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := d.Page(tt.cursor, tt.limit)
			assert.Len(t, page.Results, tt.wantLen)
			assert.Equal(t, tt.wantRemaining, page.Remaining)
			assert.Equal(t, tt.cursor, page.Cursor)
		})
	}
}

func TestDirectory_PageEncodesWireKeys(t *testing.T) {
	page := NewDirectory(1, 0).Page(0, 1)

	body, err := json.Marshal(models.PageResponse{Response: &page})
	require.NoError(t, err)

	var decoded models.PageResponse
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.NotNil(t, decoded.Response)
	require.Len(t, decoded.Response.Results, 1)
	assert.Equal(t, "Ada", decoded.Response.Results[0].FirstName)
	assert.Contains(t, string(body), `"🔴 firstName":"Ada"`)
	assert.Contains(t, string(body), `"remaining":0`)
}
