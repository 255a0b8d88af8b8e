package location

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mdoberfield/metar-iwxxm/record"
)

func TestParse(t *testing.T) {
	Convey("Given a bare compass point with no qualifier", t, func() {
		loc := Parse("NW")

		Convey("it lands in the ATSTN bucket", func() {
			So(loc.ATSTN, ShouldResemble, []record.Arc{{CCW: 292.5, CW: 337.5}})
			So(loc.OHD, ShouldBeEmpty)
			So(loc.VC, ShouldBeEmpty)
			So(loc.DSNT, ShouldBeEmpty)
		})
	})

	Convey("Given OHD", t, func() {
		loc := Parse("OHD")

		Convey("it produces the full-circle sector", func() {
			So(loc.OHD, ShouldResemble, []record.Arc{{CCW: 0, CW: 360}})
		})
	})

	Convey("Given DSNT N AND E-SE OHD", t, func() {
		loc := Parse("DSNT N AND E-SE OHD")

		Convey("DSNT carries one lone sector and one merged arc", func() {
			So(loc.DSNT, ShouldResemble, []record.Arc{
				{CCW: 337.5, CW: 22.5},
				{CCW: 67.5, CW: 157.5},
			})
		})

		Convey("OHD still carries the full circle", func() {
			So(loc.OHD, ShouldResemble, []record.Arc{{CCW: 0, CW: 360}})
		})
	})

	Convey("Given adjacent sectors that touch", t, func() {
		loc := Parse("VC N-NE E")

		Convey("they merge into a single arc", func() {
			So(loc.VC, ShouldResemble, []record.Arc{{CCW: 337.5, CW: 112.5}})
		})
	})
}
