package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
	"github.com/shenikar/usher_checkin/internal/models"
)

const (
	// EarthRadiusMeters - средний радиус Земли
	EarthRadiusMeters = 6371000.0
	// DefaultPerimeterMeters - радиус, внутри которого ашер считается присутствующим
	DefaultPerimeterMeters = 200.0
)

// ErrNoVenueConfigured - список залов пуст, это ошибка конфигурации, а не данных
var ErrNoVenueConfigured = errors.New("no venue configured")

// DistanceMeters возвращает расстояние по большому кругу (формула гаверсинусов).
// Координаты в градусах, диапазон не проверяется.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Radians() * EarthRadiusMeters
}

// Resolver находит ближайший зал для координат пользователя
type Resolver struct {
	venues       []models.VenueLocation
	radiusMeters float64
}

// NewResolver копирует список залов, дальше он не меняется
func NewResolver(venues []models.VenueLocation, radiusMeters float64) (*Resolver, error) {
	if len(venues) == 0 {
		return nil, ErrNoVenueConfigured
	}
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) {
		return nil, fmt.Errorf("invalid perimeter radius: %v", radiusMeters)
	}
	vs := make([]models.VenueLocation, len(venues))
	copy(vs, venues)
	return &Resolver{venues: vs, radiusMeters: radiusMeters}, nil
}

// MustNewResolver паникует, если резолвер собрать нельзя
func MustNewResolver(venues []models.VenueLocation, radiusMeters float64) *Resolver {
	r, err := NewResolver(venues, radiusMeters)
	if err != nil {
		panic(fmt.Sprintf("geo: %v", err))
	}
	return r
}

// Venues возвращает копию настроенных залов
func (r *Resolver) Venues() []models.VenueLocation {
	vs := make([]models.VenueLocation, len(r.venues))
	copy(vs, r.venues)
	return vs
}

func (r *Resolver) RadiusMeters() float64 {
	return r.radiusMeters
}

// Nearest перебирает залы и выбирает минимальное расстояние.
// При равенстве побеждает зал, идущий первым в списке.
func (r *Resolver) Nearest(lat, lng float64) models.NearestVenueResult {
	best := r.venues[0]
	bestDist := DistanceMeters(lat, lng, best.Latitude, best.Longitude)
	for _, v := range r.venues[1:] {
		d := DistanceMeters(lat, lng, v.Latitude, v.Longitude)
		if d < bestDist {
			best, bestDist = v, d
		}
	}

	return models.NearestVenueResult{
		VenueName:      best.Name,
		DistanceMeters: int(math.Round(bestDist)),
		IsWithin:       bestDist <= r.radiusMeters,
	}
}
