package window

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAudioQueue(t *testing.T) {
	Convey("AudioQueue", t, func() {
		q := NewAudioQueue(2, 2)

		Convey("Should fill silence when empty", func() {
			dst := []float32{1, 1}
			q.Fill(dst)
			So(dst, ShouldResemble, []float32{0, 0})
		})

		Convey("Should hand out periods in order", func() {
			So(q.Push([]float32{0.1, 0.2}), ShouldBeNil)
			So(q.Push([]float32{0.3, 0.4}), ShouldBeNil)
			dst := make([]float32, 2)
			q.Fill(dst)
			So(dst, ShouldResemble, []float32{0.1, 0.2})
			q.Fill(dst)
			So(dst, ShouldResemble, []float32{0.3, 0.4})
			So(q.Len(), ShouldEqual, 0)
		})

		Convey("Should discard the oldest period when full", func() {
			So(q.Push([]float32{1, 1}), ShouldBeNil)
			So(q.Push([]float32{2, 2}), ShouldBeNil)
			So(q.Push([]float32{3, 3}), ShouldBeNil)
			So(q.Len(), ShouldEqual, 2)
			dst := make([]float32, 2)
			q.Fill(dst)
			So(dst, ShouldResemble, []float32{2, 2})
		})

		Convey("Should copy pushed data", func() {
			buf := []float32{0.5, 0.5}
			So(q.Push(buf), ShouldBeNil)
			buf[0] = 9
			dst := make([]float32, 2)
			q.Fill(dst)
			So(dst[0], ShouldEqual, float32(0.5))
		})

		Convey("Should pad a short period with silence", func() {
			So(q.Push([]float32{0.7, 0.7}), ShouldBeNil)
			dst := []float32{1, 1, 1}
			q.Fill(dst)
			So(dst, ShouldResemble, []float32{0.7, 0.7, 0})
		})

		Convey("Should reject periods of the wrong length", func() {
			err := q.Push([]float32{1})
			So(errors.Is(err, ErrInvalidAudioBuffer), ShouldBeTrue)
			So(q.Len(), ShouldEqual, 0)
		})
	})
}
