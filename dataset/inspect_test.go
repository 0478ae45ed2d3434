package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	ds := &Dataset{
		Trips: []RawTrip{
			{TripID: "T001", UserType: "casual", DistanceKM: "5.2"},
			{TripID: "T002", UserType: "member", DistanceKM: ""},
			{TripID: "T003", UserType: "casual", DistanceKM: "3.0"},
			{TripID: "T004", UserType: "member", DistanceKM: "1.1"},
		},
		Stations:    []RawStation{{StationID: "S001"}},
		Maintenance: []RawMaintenance{{RecordID: "M001"}, {RecordID: "M002"}},
	}

	insp := Inspect(ds)

	assert.Equal(t, 4, insp.TripCount)
	assert.Equal(t, 1, insp.StationCount)
	assert.Equal(t, 2, insp.MaintenanceCount)

	assert.Equal(t, 1, insp.EmptyTripCells["distance_km"])
	assert.Equal(t, 0, insp.EmptyTripCells["trip_id"])
	assert.Equal(t, 4, insp.EmptyTripCells["status"])

	assert.Equal(t, []string{"casual", "member"}, insp.UserTypes)

	assert.Len(t, insp.SampleTrips, 3)
	assert.Equal(t, "T001", insp.SampleTrips[0].TripID)
	assert.Equal(t, "T003", insp.SampleTrips[2].TripID)
}

func TestInspectEmptyDataset(t *testing.T) {
	insp := Inspect(&Dataset{})

	assert.Equal(t, 0, insp.TripCount)
	assert.Empty(t, insp.SampleTrips)
	assert.Empty(t, insp.UserTypes)
	assert.Equal(t, 0, insp.EmptyTripCells["trip_id"])
}
