package reltime

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genAnchor() gopter.Gen {
	// Anything between 1970 and roughly 2100.
	return gen.Int64Range(0, 4_100_000_000).Map(func(sec int64) time.Time {
		return time.Unix(sec, 0).UTC()
	})
}

func TestResolveProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("floors never move forward", prop.ForAll(
		func(at time.Time, unit string) bool {
			got, err := Resolve("now/"+unit, at)
			return err == nil && !got.After(at)
		},
		genAnchor(),
		gen.OneConstOf("y", "M", "w", "d", "h", "m", "s"),
	))

	properties.Property("floors are idempotent", prop.ForAll(
		func(at time.Time, unit string) bool {
			once, err := Resolve("now/"+unit, at)
			if err != nil {
				return false
			}
			twice, err := Resolve("now/"+unit, once)
			return err == nil && twice.Equal(once)
		},
		genAnchor(),
		gen.OneConstOf("y", "M", "w", "d", "h", "m", "s"),
	))

	properties.Property("adding and subtracting days round-trips", prop.ForAll(
		func(at time.Time, n int64) bool {
			got, err := Resolve(fmt.Sprintf("now+%dd-%dd", n, n), at)
			return err == nil && got.Equal(at)
		},
		genAnchor(),
		gen.Int64Range(0, 100_000),
	))

	properties.Property("second shifts match duration arithmetic", prop.ForAll(
		func(at time.Time, n int64) bool {
			got, err := Resolve(fmt.Sprintf("now-%ds", n), at)
			return err == nil && got.Equal(at.Add(-time.Duration(n)*time.Second))
		},
		genAnchor(),
		gen.Int64Range(0, 4_000_000_000),
	))

	properties.Property("week floors land on day boundaries seven days apart", prop.ForAll(
		func(at time.Time) bool {
			got, err := Resolve("now/w", at)
			if err != nil {
				return false
			}
			secs := got.Unix()
			return secs%(daysPerWeek*secondsPerDay) == 0
		},
		genAnchor(),
	))

	properties.TestingRun(t)
}
