package domain

import "testing"

func TestVenueHasPopularity(t *testing.T) {
	if (Venue{}).HasPopularity() {
		t.Error("venue without enrichment data reports popularity")
	}
	if (Venue{Qloo: &QlooMetadata{}}).HasPopularity() {
		t.Error("zero popularity should read as absent")
	}
	if !(Venue{Qloo: &QlooMetadata{Popularity: 0.4}}).HasPopularity() {
		t.Error("positive popularity not reported")
	}
}

func TestVenueKeywords(t *testing.T) {
	if kws := (Venue{}).Keywords(); kws != nil {
		t.Errorf("keywords without enrichment data = %v, want nil", kws)
	}

	v := Venue{Qloo: &QlooMetadata{Keywords: []string{"art", "local"}}}
	kws := v.Keywords()
	if len(kws) != 2 || kws[0] != "art" {
		t.Errorf("keywords = %v", kws)
	}
}

func TestCoordsToList(t *testing.T) {
	c := Coordinates{Lat: 41.3851, Lng: 2.1734}
	got := c.CoordsToList()
	if len(got) != 2 || got[0] != 41.3851 || got[1] != 2.1734 {
		t.Errorf("CoordsToList = %v, want [lat lng]", got)
	}
}
