package geo

import (
	"math"
	"testing"

	"tracenfind/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	oneDegree := orb.EarthRadius * math.Pi / 180

	tests := []struct {
		name string
		a, b entity.Coordinate
		want float64
	}{
		{name: "same point", a: entity.Coordinate{Lat: 25.033, Lng: 121.5654}, b: entity.Coordinate{Lat: 25.033, Lng: 121.5654}, want: 0},
		{name: "one degree of longitude on the equator", a: entity.Coordinate{}, b: entity.Coordinate{Lng: 1}, want: oneDegree},
		{name: "one degree of latitude", a: entity.Coordinate{Lat: 10}, b: entity.Coordinate{Lat: 11}, want: oneDegree},
		{name: "antipodal", a: entity.Coordinate{}, b: entity.Coordinate{Lng: 180}, want: orb.EarthRadius * math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceMeters(tt.a, tt.b), 1e-6)
		})
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := entity.Coordinate{Lat: 25.0330, Lng: 121.5654}
	b := entity.Coordinate{Lat: 25.0478, Lng: 121.5170}

	d := DistanceMeters(a, b)
	assert.InDelta(t, d, DistanceMeters(b, a), 1e-9)
	assert.InDelta(t, 5100, d, 150)
}

func TestDistanceMeters_NonFinite(t *testing.T) {
	good := entity.Coordinate{Lat: 1, Lng: 1}

	assert.True(t, math.IsNaN(DistanceMeters(entity.Coordinate{Lat: math.NaN()}, good)))
	assert.True(t, math.IsNaN(DistanceMeters(good, entity.Coordinate{Lng: math.Inf(1)})))
}

func TestWithin(t *testing.T) {
	center := entity.Coordinate{}
	edge := entity.Coordinate{Lng: 1}
	radius := DistanceMeters(center, edge)

	inside, ok := Within(edge, center, radius)
	assert.True(t, ok)
	assert.True(t, inside, "boundary counts as inside")

	inside, ok = Within(edge, center, radius-0.01)
	assert.True(t, ok)
	assert.False(t, inside)

	_, ok = Within(entity.Coordinate{Lat: math.NaN()}, center, radius)
	assert.False(t, ok)
}
