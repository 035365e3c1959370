package depot

// PermissiveMembership ignores the filter sets and returns the whole
// target array. This is the default policy: the sets are computed and
// threaded through, but nothing is excluded.
type PermissiveMembership struct{}

var _ Membership = PermissiveMembership{}

func (PermissiveMembership) Restrict(_ Storage, targetLen int, _, _, _ []TypeKey) (int, int, error) {
	return 0, targetLen, nil
}

// LengthMembership applies the filter sets under position-as-identity:
// the entity at index i has component T exactly when i < len(array of T).
// The selected indices therefore form one interval:
//
//   - every set in all must be present, so the interval ends at the
//     shortest of those arrays;
//   - at least one set member in anyOf must be present (vacuously true
//     when anyOf is empty), so it ends no later than the longest of those;
//   - no member of none may be present, so it starts past the longest of
//     those.
//
// A set member with no registered array fails with
// MissingComponentTypeError.
type LengthMembership struct{}

var _ Membership = LengthMembership{}

func (LengthMembership) Restrict(sto Storage, targetLen int, all, anyOf, none []TypeKey) (int, int, error) {
	hi := targetLen
	for _, key := range all {
		n, err := sto.Len(key)
		if err != nil {
			return 0, 0, err
		}
		hi = min(hi, n)
	}
	if len(anyOf) > 0 {
		widest := 0
		for _, key := range anyOf {
			n, err := sto.Len(key)
			if err != nil {
				return 0, 0, err
			}
			widest = max(widest, n)
		}
		hi = min(hi, widest)
	}
	lo := 0
	for _, key := range none {
		n, err := sto.Len(key)
		if err != nil {
			return 0, 0, err
		}
		lo = max(lo, n)
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi, nil
}
