package scheduleRepo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Duplicate-create conflicts depend entirely on the unique compound
// index: without it, a second schedule for the same facility/day would
// be silently accepted.
func TestScheduleIndexesDeclareFacilityDateUniqueness(t *testing.T) {
	t.Parallel()

	declared := scheduleIndexModels()
	var found *mongo.IndexModel
	for i := range declared {
		opts := declared[i].Options
		if opts != nil && opts.Name != nil && *opts.Name == "unique_facility_date" {
			found = &declared[i]
		}
	}
	if found == nil {
		t.Fatal("unique_facility_date index is not declared")
	}
	if found.Options.Unique == nil || !*found.Options.Unique {
		t.Error("unique_facility_date must be declared unique")
	}

	keys, ok := found.Keys.(bson.D)
	if !ok {
		t.Fatalf("index keys have unexpected type %T", found.Keys)
	}
	if len(keys) != 2 || keys[0].Key != "facility_id" || keys[1].Key != "date" {
		t.Errorf("index keys = %v, want (facility_id, date)", keys)
	}
}
