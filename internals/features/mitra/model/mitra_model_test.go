package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTriState(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, StatusUnknown, MitraTokenModel{}.Status())
	assert.Equal(t, StatusActive, MitraTokenModel{StatusActive: &yes}.Status())
	assert.Equal(t, StatusInactive, MitraTokenModel{StatusActive: &no}.Status())
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusActive, NormalizeStatus(" TRUE "))
	assert.Equal(t, StatusInactive, NormalizeStatus("0"))
	assert.Equal(t, StatusUnknown, NormalizeStatus("null"))
	assert.Equal(t, "inactive", NormalizeStatus("Inactive"))
}
