package depot

// Queries compose one to three Filters into a single typed request.
// Resolve produces read-only views through the query cache keyed by the
// invoking system; ResolveMut produces mutable views through separately
// discriminated cache slots so read and write handles for the same system
// never share an entry. Ids reports the flat target key list, which is
// what a scheduler uses to detect read/write conflicts between systems.

var (
	_ Source[View[int]]       = Query1[int]{}
	_ MutSource[MutView[int]] = Query1[int]{}

	_ Source[Views2[int, int]]       = Query2[int, int]{}
	_ MutSource[MutViews2[int, int]] = Query2[int, int]{}

	_ Source[Views3[int, int, int]]       = Query3[int, int, int]{}
	_ MutSource[MutViews3[int, int, int]] = Query3[int, int, int]{}
)

// materialize runs one filter against storage: look up the column, let
// the membership policy restrict the window, then refresh (or create) the
// cached handle for this call site.
func materialize[T any](sto Storage, f Filter[T], system TypeKey, write bool) (sliceHandle, error) {
	var col Column
	var err error
	if write {
		col, err = sto.GetWrite(f.Target())
	} else {
		col, err = sto.GetRead(f.Target())
	}
	if err != nil {
		return sliceHandle{}, err
	}
	all, anyOf, none := f.AllAnyNone()
	lo, hi, err := sto.Membership().Restrict(sto, col.Len(), all, anyOf, none)
	if err != nil {
		return sliceHandle{}, err
	}
	key := cacheKey{system: system, slot: f.slot, write: write}
	return sto.cache().fetchOrUpdate(key, col.handle(lo, hi)), nil
}

func resolveRead[T any](sto Storage, f Filter[T], system TypeKey) (View[T], error) {
	h, err := materialize(sto, f, system, false)
	if err != nil {
		return View[T]{}, err
	}
	return viewOf[T](h), nil
}

func resolveWrite[T any](sto Storage, f Filter[T], system TypeKey) (MutView[T], error) {
	h, err := materialize(sto, f, system, true)
	if err != nil {
		return MutView[T]{}, err
	}
	return mutViewOf[T](h), nil
}

type Query1[A any] struct {
	a Filter[A]
}

func (q Query1[A]) Resolve(sto Storage, system TypeKey) (View[A], error) {
	return resolveRead(sto, q.a, system)
}

func (q Query1[A]) ResolveMut(sto Storage, system TypeKey) (MutView[A], error) {
	return resolveWrite(sto, q.a, system)
}

func (q Query1[A]) Ids() []TypeKey {
	return []TypeKey{q.a.Target()}
}

// Views2 and MutViews2 are the materialized tuples for a two-filter query.
type Views2[A, B any] struct {
	A View[A]
	B View[B]
}

type MutViews2[A, B any] struct {
	A MutView[A]
	B MutView[B]
}

type Query2[A, B any] struct {
	a Filter[A]
	b Filter[B]
}

func (q Query2[A, B]) Resolve(sto Storage, system TypeKey) (Views2[A, B], error) {
	va, err := resolveRead(sto, q.a, system)
	if err != nil {
		return Views2[A, B]{}, err
	}
	vb, err := resolveRead(sto, q.b, system)
	if err != nil {
		return Views2[A, B]{}, err
	}
	return Views2[A, B]{A: va, B: vb}, nil
}

func (q Query2[A, B]) ResolveMut(sto Storage, system TypeKey) (MutViews2[A, B], error) {
	va, err := resolveWrite(sto, q.a, system)
	if err != nil {
		return MutViews2[A, B]{}, err
	}
	vb, err := resolveWrite(sto, q.b, system)
	if err != nil {
		return MutViews2[A, B]{}, err
	}
	return MutViews2[A, B]{A: va, B: vb}, nil
}

func (q Query2[A, B]) Ids() []TypeKey {
	return []TypeKey{q.a.Target(), q.b.Target()}
}

type Views3[A, B, C any] struct {
	A View[A]
	B View[B]
	C View[C]
}

type MutViews3[A, B, C any] struct {
	A MutView[A]
	B MutView[B]
	C MutView[C]
}

type Query3[A, B, C any] struct {
	a Filter[A]
	b Filter[B]
	c Filter[C]
}

func (q Query3[A, B, C]) Resolve(sto Storage, system TypeKey) (Views3[A, B, C], error) {
	va, err := resolveRead(sto, q.a, system)
	if err != nil {
		return Views3[A, B, C]{}, err
	}
	vb, err := resolveRead(sto, q.b, system)
	if err != nil {
		return Views3[A, B, C]{}, err
	}
	vc, err := resolveRead(sto, q.c, system)
	if err != nil {
		return Views3[A, B, C]{}, err
	}
	return Views3[A, B, C]{A: va, B: vb, C: vc}, nil
}

func (q Query3[A, B, C]) ResolveMut(sto Storage, system TypeKey) (MutViews3[A, B, C], error) {
	va, err := resolveWrite(sto, q.a, system)
	if err != nil {
		return MutViews3[A, B, C]{}, err
	}
	vb, err := resolveWrite(sto, q.b, system)
	if err != nil {
		return MutViews3[A, B, C]{}, err
	}
	vc, err := resolveWrite(sto, q.c, system)
	if err != nil {
		return MutViews3[A, B, C]{}, err
	}
	return MutViews3[A, B, C]{A: va, B: vb, C: vc}, nil
}

func (q Query3[A, B, C]) Ids() []TypeKey {
	return []TypeKey{q.a.Target(), q.b.Target(), q.c.Target()}
}
