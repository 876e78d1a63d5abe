package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethodID(t *testing.T) {
	method := ParseMethodID("carrier_booking:servicepakke")
	assert.True(t, method.Recognized())
	assert.Equal(t, "SERVICEPAKKE", method.Service)
	assert.Equal(t, "", method.PickupPointID)
}

func TestParseMethodIDWithPickupPoint(t *testing.T) {
	method := ParseMethodID("carrier_booking:servicepakke-121")
	assert.True(t, method.Recognized())
	assert.Equal(t, "SERVICEPAKKE", method.Service)
	assert.Equal(t, "121", method.PickupPointID)
}

func TestParseMethodIDKeepsServiceSuffixes(t *testing.T) {
	// Only the pickup service carries an embedded id; a digit suffix on
	// another service is part of the service key.
	method := ParseMethodID("carrier_booking:ekspress09")
	assert.Equal(t, "EKSPRESS09", method.Service)
	assert.Equal(t, "", method.PickupPointID)
}

func TestParseMethodIDForeign(t *testing.T) {
	method := ParseMethodID("flat_rate:1")
	assert.False(t, method.Recognized())

	method = ParseMethodID("carrier_booking")
	assert.True(t, method.Recognized())
	assert.Equal(t, "", method.Service)
}
