package auction_test

import (
	. "gopkg.in/check.v1"

	"github.com/canonical/go-auction/auction"
)

func (*S) TestDequeEmptyPopErrors(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(3), IsNil)

	_, err := d.PopFront()
	c.Assert(err, NotNil)
	c.Assert(err, ErrorMatches, "auction: BoundedDeque.PopFront: .*")

	_, err = d.PopBack()
	c.Assert(err, NotNil)
}

func (*S) TestDequeAllocateNegative(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(-1), NotNil)
}

func (*S) TestDequePushBackPopBackLIFO(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(4), IsNil)

	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	c.Assert(d.Len(), Equals, 3)

	v, err := d.PopBack()
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 3)

	v, err = d.PopBack()
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 2)

	d.PushBack(9)
	v, err = d.PopBack()
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 9)

	v, err = d.PopBack()
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 1)
	c.Assert(d.Len(), Equals, 0)
}

func (*S) TestDequeFullPushIsNoop(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(2), IsNil)

	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3) // dropped silently, deque is full
	c.Assert(d.Len(), Equals, 2)

	v, err := d.PopFront()
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 1)
}

func (*S) TestDequeWrapsAroundContainer(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(3), IsNil)

	d.PushBack(1)
	d.PushBack(2)
	v, _ := d.PopFront()
	c.Assert(v, Equals, 1)
	d.PushBack(3)
	d.PushBack(4) // wraps begin/end around the backing array
	c.Assert(d.Len(), Equals, 3)

	var got []int
	for d.Len() > 0 {
		v, err := d.PopFront()
		c.Assert(err, IsNil)
		got = append(got, v)
	}
	c.Assert(got, DeepEquals, []int{2, 3, 4})
}

func (*S) TestDequePushFront(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(3), IsNil)

	d.PushFront(1)
	d.PushFront(2)
	d.PushFront(3)

	var got []int
	for d.Len() > 0 {
		v, err := d.PopFront()
		c.Assert(err, IsNil)
		got = append(got, v)
	}
	c.Assert(got, DeepEquals, []int{3, 2, 1})
}

func (*S) TestDequeDeleteFrontBack(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(3), IsNil)
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)

	d.DeleteFront()
	c.Assert(d.Len(), Equals, 2)
	v, _ := d.PopFront()
	c.Assert(v, Equals, 2)

	d.PushBack(4)
	d.DeleteBack()
	c.Assert(d.Len(), Equals, 1)
	v, _ = d.PopFront()
	c.Assert(v, Equals, 3)
}

func (*S) TestDequeResetKeepsCapacity(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(5), IsNil)
	d.PushBack(1)
	d.PushBack(2)
	d.Reset()
	c.Assert(d.Len(), Equals, 0)
	c.Assert(d.Cap(), Equals, 5)
	d.PushBack(7)
	v, _ := d.PopFront()
	c.Assert(v, Equals, 7)
}

func (*S) TestDequeClearReleasesCapacity(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(5), IsNil)
	d.PushBack(1)
	d.Clear()
	c.Assert(d.Len(), Equals, 0)
	c.Assert(d.Cap(), Equals, 0)
	// Safe to clear again.
	d.Clear()
	c.Assert(d.Cap(), Equals, 0)
}

func (*S) TestDequeReallocateResets(c *C) {
	var d auction.BoundedDeque
	c.Assert(d.Allocate(3), IsNil)
	d.PushBack(1)
	d.PushBack(2)
	c.Assert(d.Allocate(5), IsNil)
	c.Assert(d.Len(), Equals, 0)
	c.Assert(d.Cap(), Equals, 5)
}
