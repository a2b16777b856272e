package vector

import "github.com/cockroachdb/errors"

var errOops = errors.New("oops")

// objCounters counts lifecycle events of obj. Tests using obj must not
// run in parallel.
type objCounters struct {
	constructFailCountdown int
	copyFailCountdown      int

	defaultConstructed int
	constructedWithID  int
	copied             int
	moved              int
	destroyed          int
	assigned           int
	moveAssigned       int
}

var objStats objCounters

func resetObjStats() {
	objStats = objCounters{}
}

func aliveObjs() int {
	return objStats.defaultConstructed +
		objStats.constructedWithID +
		objStats.copied +
		objStats.moved -
		objStats.destroyed
}

type obj struct {
	id         int
	name       string
	failOnCopy bool
}

func newObj(id int) obj {
	objStats.constructedWithID++
	return obj{id: id}
}

func (o *obj) Construct() error {
	if objStats.constructFailCountdown > 0 {
		objStats.constructFailCountdown--
		if objStats.constructFailCountdown == 0 {
			return errOops
		}
	}
	objStats.defaultConstructed++
	return nil
}

func (o *obj) CopyFrom(src *obj) error {
	if src.failOnCopy {
		return errOops
	}
	if objStats.copyFailCountdown > 0 {
		objStats.copyFailCountdown--
		if objStats.copyFailCountdown == 0 {
			return errOops
		}
	}
	o.id, o.name = src.id, src.name
	objStats.copied++
	return nil
}

func (o *obj) AssignFrom(src *obj) error {
	if o != src {
		o.id, o.name = src.id, src.name
		objStats.assigned++
	}
	return nil
}

func (o *obj) MoveFrom(src *obj) {
	o.id, o.name = src.id, src.name
	src.name = ""
	objStats.moved++
}

func (o *obj) MoveAssignFrom(src *obj) {
	o.id, o.name = src.id, src.name
	src.name = ""
	objStats.moveAssigned++
}

func (o *obj) Destroy() {
	objStats.destroyed++
	o.id = 0
}

func (o *obj) NothrowMove() {}

// copyingTraits are the obj hooks without the nothrow move declaration, so
// growth copies.
func copyingTraits() Traits[obj] {
	tr := TraitsFor[obj]()
	tr.NothrowMove = false
	return tr
}

// unique cannot be copied.
type unique struct {
	value int
}

func (*unique) NoCopy() {}

func objIDs(v *Vector[obj]) []int {
	ids := make([]int, 0, v.Size())
	for _, o := range v.All() {
		ids = append(ids, o.id)
	}
	return ids
}
