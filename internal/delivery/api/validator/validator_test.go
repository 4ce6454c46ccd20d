package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Platform string  `json:"platform" validate:"required,oneof=web ios android"`
	Radius   float64 `json:"radius_meters" validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{Platform: "web", Radius: 10}))

	err := v.Validate(&sampleRequest{Platform: "desktop"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform: must be one of web ios android")
	assert.Contains(t, err.Error(), "radius_meters: must be greater than 0")
}

func TestValidate_RequiredUsesJSONName(t *testing.T) {
	err := New().Validate(&sampleRequest{Radius: 1})

	require.Error(t, err)
	assert.Equal(t, "platform: is required", err.Error())
}
