package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r))
	}
	assert.False(t, IsValidRole("owner"))
	assert.False(t, IsValidRole("Admin"))
	assert.Equal(t, "admin", NormalizeRole(" Admin "))
}
