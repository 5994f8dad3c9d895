package specification_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/go-leo/domain/specification"
)

type account struct {
	Balance int64
	Frozen  bool
}

func TestSpecification(t *testing.T) {
	solvent := specification.New[account](func(candidate account) bool {
		return candidate.Balance > 0
	})
	frozen := specification.New[account](func(candidate account) bool {
		return candidate.Frozen
	})

	Convey("Given a solvent, active account", t, func() {
		a := account{Balance: 100}

		Convey("The base specifications hold", func() {
			So(solvent.IsSatisfiedBy(a), ShouldBeTrue)
			So(frozen.IsSatisfiedBy(a), ShouldBeFalse)
		})

		Convey("And composes", func() {
			So(solvent.And(frozen.Not()).IsSatisfiedBy(a), ShouldBeTrue)
			So(solvent.And(frozen).IsSatisfiedBy(a), ShouldBeFalse)
		})

		Convey("Or composes", func() {
			So(solvent.Or(frozen).IsSatisfiedBy(a), ShouldBeTrue)
			So(frozen.Or(frozen).IsSatisfiedBy(a), ShouldBeFalse)
		})

		Convey("Not inverts", func() {
			So(solvent.Not().IsSatisfiedBy(a), ShouldBeFalse)
			So(solvent.Not().Not().IsSatisfiedBy(a), ShouldBeTrue)
		})
	})

	Convey("Given an overdrawn, frozen account", t, func() {
		a := account{Balance: -1, Frozen: true}

		So(solvent.IsSatisfiedBy(a), ShouldBeFalse)
		So(frozen.IsSatisfiedBy(a), ShouldBeTrue)
		So(solvent.Or(frozen).IsSatisfiedBy(a), ShouldBeTrue)
		So(solvent.And(frozen).IsSatisfiedBy(a), ShouldBeFalse)
	})
}
