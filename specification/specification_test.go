package specification_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-kata/patterns/specification"
)

type cargo struct {
	Destination string
	WeightKg    int
	Fragile     bool
}

func TestSpecification(t *testing.T) {
	ctx := context.Background()

	heavy := specification.New(func(_ context.Context, c cargo) bool {
		return c.WeightKg > 1000
	})
	fragile := specification.New(func(_ context.Context, c cargo) bool {
		return c.Fragile
	})
	domestic := specification.New(func(_ context.Context, c cargo) bool {
		return c.Destination == "domestic"
	})

	box := cargo{Destination: "domestic", WeightKg: 1500, Fragile: false}

	Convey("Given a heavy domestic cargo", t, func() {
		Convey("Plain specifications match it directly", func() {
			So(heavy.IsSatisfiedBy(ctx, box), ShouldBeTrue)
			So(fragile.IsSatisfiedBy(ctx, box), ShouldBeFalse)
			So(domestic.IsSatisfiedBy(ctx, box), ShouldBeTrue)
		})

		Convey("And requires both sides", func() {
			So(heavy.And(domestic).IsSatisfiedBy(ctx, box), ShouldBeTrue)
			So(heavy.And(fragile).IsSatisfiedBy(ctx, box), ShouldBeFalse)
		})

		Convey("Or requires either side", func() {
			So(fragile.Or(domestic).IsSatisfiedBy(ctx, box), ShouldBeTrue)
			So(fragile.Or(fragile).IsSatisfiedBy(ctx, box), ShouldBeFalse)
		})

		Convey("Not inverts", func() {
			So(fragile.Not().IsSatisfiedBy(ctx, box), ShouldBeTrue)
			So(heavy.Not().IsSatisfiedBy(ctx, box), ShouldBeFalse)
		})

		Convey("Conjunction and Disjunction span many rules", func() {
			So(specification.Conjunction(heavy, domestic, fragile.Not()).IsSatisfiedBy(ctx, box), ShouldBeTrue)
			So(specification.Disjunction(fragile, heavy).IsSatisfiedBy(ctx, box), ShouldBeTrue)
			So(specification.Disjunction[cargo]().IsSatisfiedBy(ctx, box), ShouldBeFalse)
			So(specification.Conjunction[cargo]().IsSatisfiedBy(ctx, box), ShouldBeTrue)
		})
	})
}
