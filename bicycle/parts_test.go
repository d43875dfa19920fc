package bicycle

import (
	"reflect"
	"sync"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func roadBikeParts() (chain Part, roadTire Part, tape Part) {
	chain = NewPart(Name("chain"), Description("10-speed"), NeedsSpare(false))
	roadTire = NewPart(Name("tire"), Description("slim"))
	tape = NewPart(Name("tape"), Description("red"))
	return chain, roadTire, tape
}

func TestParts(t *testing.T) {
	convey.Convey("Given road bike parts", t, func() {
		chain, roadTire, _ := roadBikeParts()
		parts := NewParts(chain, roadTire)

		convey.Convey("size counts every part", func() {
			convey.So(parts.Size(), convey.ShouldEqual, 2)
		})

		convey.Convey("spares holds only the parts needing a spare", func() {
			convey.So(parts.Spares(), convey.ShouldResemble, []Part{roadTire})
		})

		convey.Convey("iteration yields the parts in insertion order", func() {
			var got []Part
			for p := range parts.All() {
				got = append(got, p)
			}
			convey.So(got, convey.ShouldResemble, []Part{chain, roadTire})
		})

		convey.Convey("spares is idempotent", func() {
			convey.So(parts.Spares(), convey.ShouldResemble, parts.Spares())
		})
	})
}

func TestParts_SparesKeepsOrder(t *testing.T) {
	chain, roadTire, tape := roadBikeParts()
	parts := NewParts(roadTire, chain, tape, chain)
	assert.Equal(t, []Part{roadTire, tape}, parts.Spares())
	assert.Equal(t, 4, parts.Size())
	assert.Equal(t, []Part{roadTire, chain, tape, chain}, parts.ToSlice())
}

func TestParts_Empty(t *testing.T) {
	parts := NewParts()
	assert.Equal(t, 0, parts.Size())
	assert.Equal(t, []Part{}, parts.Spares())
	assert.True(t, parts.IsEmpty())
}

func TestParts_NoSpares(t *testing.T) {
	chain, _, _ := roadBikeParts()
	parts := NewParts(chain)
	assert.Empty(t, parts.Spares())
}

func TestParts_OwnsSequence(t *testing.T) {
	chain, roadTire, tape := roadBikeParts()
	input := []Part{chain, roadTire}
	parts := NewParts(input...)
	input[0] = tape
	assert.Equal(t, []Part{chain, roadTire}, parts.ToSlice())
}

func TestParts_IterationIsRestartable(t *testing.T) {
	chain, roadTire, tape := roadBikeParts()
	parts := NewParts(chain, roadTire, tape)

	var first []Part
	for p := range parts.All() {
		first = append(first, p)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []Part{chain, roadTire}, first)

	var second []Part
	for p := range parts.All() {
		second = append(second, p)
	}
	assert.Equal(t, []Part{chain, roadTire, tape}, second)
}

func TestParts_DerivedOperations(t *testing.T) {
	chain, roadTire, tape := roadBikeParts()
	parts := NewParts(chain, roadTire, tape)

	assert.Equal(t, 3, parts.Count())
	assert.Equal(t, 2, parts.CountFunc(SpareNeeded.IsSatisfiedBy))
	assert.Equal(t, []Part{chain}, parts.Reject(SpareNeeded.IsSatisfiedBy))
	assert.Equal(t, []Part{chain}, parts.SelectBy(SpareNeeded.Not()))

	got, ok := parts.Find(func(p Part) bool { return p.Name() == "tape" })
	assert.True(t, ok)
	assert.Equal(t, tape, got)

	spares, rest := parts.Partition(SpareNeeded.IsSatisfiedBy)
	assert.Equal(t, []Part{roadTire, tape}, spares)
	assert.Equal(t, []Part{chain}, rest)
}

func TestParts_SparesFollowsAll(t *testing.T) {
	chain, roadTire, tape := roadBikeParts()
	parts := NewParts(chain, roadTire, tape)

	var expected []Part
	for p := range parts.All() {
		if p.NeedsSpare() {
			expected = append(expected, p)
		}
	}
	assert.Equal(t, expected, parts.Spares())
	assert.Equal(t, parts.Size(), parts.Count())

	// the mixin cannot be swapped out from under the owned sequence
	typ := reflect.TypeOf(Parts{})
	for i := 0; i < typ.NumField(); i++ {
		assert.False(t, typ.Field(i).IsExported(), typ.Field(i).Name)
	}
}

func TestParts_ConcurrentReaders(t *testing.T) {
	chain, roadTire, tape := roadBikeParts()
	parts := NewParts(chain, roadTire, tape, roadTire)

	var wg sync.WaitGroup
	spares := make([][]Part, 16)
	all := make([][]Part, 16)
	for i := range spares {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			spares[i] = parts.Spares()
			for p := range parts.All() {
				all[i] = append(all[i], p)
			}
		}(i)
	}
	wg.Wait()

	for i := range spares {
		assert.Equal(t, []Part{roadTire, tape, roadTire}, spares[i])
		assert.Equal(t, []Part{chain, roadTire, tape, roadTire}, all[i])
	}
}
