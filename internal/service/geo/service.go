package geo

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/repository"
)

// DefaultCity is the fallback municipality when no coordinates are
// supplied or when no reference point is strictly nearer.
const DefaultCity = "Chennai"

type referencePoint struct {
	City string
	Lat  float64
	Lon  float64
}

// The deployment's fixed reference municipalities. Distances are
// compared against Chennai as the baseline; a competitor wins only
// when it is strictly closer than every other point.
var referencePoints = []referencePoint{
	{City: "Chennai", Lat: 13.0827, Lon: 80.2707},
	{City: "Coimbatore", Lat: 11.0168, Lon: 76.9558},
	{City: "Salem", Lat: 11.6643, Lon: 78.1460},
}

type Service interface {
	// ResolveDepartment maps a complaint category to its department,
	// creating the department row on first use.
	ResolveDepartment(ctx context.Context, category domain.Category) (*domain.Department, error)
	// ResolveMunicipality maps coordinates to the nearest reference
	// municipality. It never fails on no-match: absent coordinates and
	// ties fall back to the default city, and a missing municipality
	// row yields the city name with a nil municipality.
	ResolveMunicipality(ctx context.Context, lat, lon *float64) (*domain.Municipality, string, error)
}

type service struct {
	deptRepo repository.DepartmentRepository
	muniRepo repository.MunicipalityRepository
	redis    *redis.Client
}

func NewService(deptRepo repository.DepartmentRepository, muniRepo repository.MunicipalityRepository, redis *redis.Client) Service {
	return &service{
		deptRepo: deptRepo,
		muniRepo: muniRepo,
		redis:    redis,
	}
}

// DepartmentNameFor is the fixed category routing table.
func DepartmentNameFor(category domain.Category) string {
	switch category {
	case domain.CategoryRoad:
		return "Roads"
	case domain.CategoryGarbage:
		return "Sanitation"
	case domain.CategoryWater:
		return "Water"
	case domain.CategoryElectricity:
		return "Electricity"
	default:
		return "General"
	}
}

func (s *service) ResolveDepartment(ctx context.Context, category domain.Category) (*domain.Department, error) {
	name := DepartmentNameFor(category)
	cacheKey := "dept:" + name

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var dept domain.Department
			if json.Unmarshal([]byte(cached), &dept) == nil {
				return &dept, nil
			}
		}
	}

	dept, err := s.deptRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.redis != nil && dept != nil {
		if deptJSON, err := json.Marshal(dept); err == nil {
			_ = s.redis.Set(ctx, cacheKey, deptJSON, time.Hour).Err()
		}
	}

	return dept, nil
}

func (s *service) ResolveMunicipality(ctx context.Context, lat, lon *float64) (*domain.Municipality, string, error) {
	city := DefaultCity
	if lat != nil && lon != nil {
		city = NearestCity(*lat, *lon)
	}

	municipality, err := s.muniRepo.GetByName(ctx, city)
	if err != nil {
		return nil, "", err
	}
	// municipality may be nil when the seed row is missing; the caller
	// keeps the city name and continues degraded.
	return municipality, city, nil
}

// NearestCity picks the reference point nearest to the given
// coordinates. The first reference point is the baseline and keeps
// the assignment unless a competitor is strictly closer than all
// other points.
func NearestCity(lat, lon float64) string {
	baseline := referencePoints[0]
	distances := make([]float64, len(referencePoints))
	for i, p := range referencePoints {
		distances[i] = DistanceKm(lat, lon, p.Lat, p.Lon)
	}

	city := baseline.City
	for i := 1; i < len(referencePoints); i++ {
		strictlyClosest := true
		for j := range referencePoints {
			if j == i {
				continue
			}
			if distances[i] >= distances[j] {
				strictlyClosest = false
				break
			}
		}
		if strictlyClosest {
			city = referencePoints[i].City
		}
	}
	return city
}

// DistanceKm computes the great-circle distance between two points
// using the spherical law of cosines, in kilometers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}
	theta := lon1 - lon2
	dist := math.Sin(toRadians(lat1))*math.Sin(toRadians(lat2)) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Cos(toRadians(theta))
	dist = math.Acos(math.Min(dist, 1))
	dist = toDegrees(dist)
	return dist * 60 * 1.1515 * 1.609344
}

func toRadians(d float64) float64 {
	return d * math.Pi / 180
}

func toDegrees(r float64) float64 {
	return r * 180 / math.Pi
}
