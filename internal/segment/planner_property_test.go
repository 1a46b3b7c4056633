package segment

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: for any positive total and segment duration and any non-negative
// overlap, the plan is contiguous, covers [0, total] exactly, produces
// ceil(total/segmentDuration) segments, and keeps every overlap window
// inside [0, total].
func TestPlan_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Integer-valued durations keep the arithmetic exact so the properties
	// can assert strict equality.
	genTotal := gen.IntRange(1, 10000)
	genSegDur := gen.IntRange(1, 500)
	genOverlap := gen.IntRange(0, 100)

	properties.Property("segments are contiguous and cover the full duration", prop.ForAll(
		func(total, segDur, overlap int) bool {
			segments := Plan(float64(total), float64(segDur), float64(overlap))
			if len(segments) == 0 {
				return false
			}
			if segments[0].Start != 0 {
				return false
			}
			if segments[len(segments)-1].End != float64(total) {
				return false
			}
			for i := 1; i < len(segments); i++ {
				if segments[i].Start != segments[i-1].End {
					return false
				}
			}
			return true
		},
		genTotal, genSegDur, genOverlap,
	))

	properties.Property("segment count equals ceil(total/segmentDuration)", prop.ForAll(
		func(total, segDur, overlap int) bool {
			segments := Plan(float64(total), float64(segDur), float64(overlap))
			want := int(math.Ceil(float64(total) / float64(segDur)))
			return len(segments) == want
		},
		genTotal, genSegDur, genOverlap,
	))

	properties.Property("overlap bounds are clamped to [0, total]", prop.ForAll(
		func(total, segDur, overlap int) bool {
			segments := Plan(float64(total), float64(segDur), float64(overlap))
			for _, s := range segments {
				if s.OverlapStart < 0 || s.OverlapStart > s.Start {
					return false
				}
				if s.OverlapEnd < s.End || s.OverlapEnd > float64(total) {
					return false
				}
			}
			return true
		},
		genTotal, genSegDur, genOverlap,
	))

	properties.Property("no core segment exceeds the segment duration", prop.ForAll(
		func(total, segDur, overlap int) bool {
			segments := Plan(float64(total), float64(segDur), float64(overlap))
			for _, s := range segments {
				if s.End-s.Start > float64(segDur) || s.End <= s.Start {
					return false
				}
			}
			return true
		},
		genTotal, genSegDur, genOverlap,
	))

	properties.TestingRun(t)
}
