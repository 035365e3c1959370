package depot

// AccessibleComponent extends a base Component with typed access to its
// array inside a Storage. Create one per component type via
// FactoryNewComponent and reuse it everywhere that type is touched.
type AccessibleComponent[T any] struct {
	Component
}

// Read returns a read-only view of the component's current array.
// The returned slice must not be retained across Storage mutations.
func (c AccessibleComponent[T]) Read(sto Storage) ([]T, error) {
	return ReadSlice[T](sto)
}

// Write returns the component's current array for in-place mutation.
func (c AccessibleComponent[T]) Write(sto Storage) ([]T, error) {
	return WriteSlice[T](sto)
}

// Append grows the component's array, invalidating previously fetched
// slices and any cached query handles until their next refresh.
func (c AccessibleComponent[T]) Append(sto Storage, values ...T) error {
	return AppendSlice(sto, values...)
}

// InsertSlice registers (or replaces) the component array for T.
func InsertSlice[T any](sto Storage, data []T) error {
	return sto.Insert(newColumn(data))
}

// ReadSlice fetches the current array for T read-only.
func ReadSlice[T any](sto Storage) ([]T, error) {
	col, err := sto.GetRead(KeyFor[T]())
	if err != nil {
		return nil, err
	}
	return typedColumn[T](col).data, nil
}

// WriteSlice fetches the current array for T for mutation.
func WriteSlice[T any](sto Storage) ([]T, error) {
	col, err := sto.GetWrite(KeyFor[T]())
	if err != nil {
		return nil, err
	}
	return typedColumn[T](col).data, nil
}

// AppendSlice grows the array for T in place. The base address may move;
// callers must re-fetch views rather than retain old ones.
func AppendSlice[T any](sto Storage, values ...T) error {
	col, err := sto.GetWrite(KeyFor[T]())
	if err != nil {
		return err
	}
	c := typedColumn[T](col)
	c.data = append(c.data, values...)
	return nil
}
