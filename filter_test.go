package depot

import (
	"errors"
	"testing"
)

// TestTypesArity tests the fixed-arity type key extraction
func TestTypesArity(t *testing.T) {
	tests := []struct {
		name string
		got  []TypeKey
		want []TypeKey
	}{
		{"Arity 0", Types0(), []TypeKey{}},
		{"Arity 1", Types1[Position](), []TypeKey{KeyFor[Position]()}},
		{"Arity 2", Types2[Position, Velocity](), []TypeKey{KeyFor[Position](), KeyFor[Velocity]()}},
		{"Arity 3", Types3[Position, Velocity, Health](), []TypeKey{
			KeyFor[Position](), KeyFor[Velocity](), KeyFor[Health](),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("Got %d keys, expected %d", len(tt.got), len(tt.want))
			}
			for i := range tt.got {
				if tt.got[i] != tt.want[i] {
					t.Errorf("Key %d is %#x, expected %#x", i, uint64(tt.got[i]), uint64(tt.want[i]))
				}
			}
		})
	}
}

// TestTypeKeyStability tests that a type always produces the same key and
// distinct types do not collide
func TestTypeKeyStability(t *testing.T) {
	if KeyFor[Position]() != KeyFor[Position]() {
		t.Error("Same type produced different keys")
	}
	if KeyFor[Position]() == KeyFor[Velocity]() {
		t.Error("Distinct types produced the same key")
	}
}

// TestFilterEmptySetsSelectEverything tests the boundary case: a filter
// with no membership constraints reports only its target key and returns
// the whole array
func TestFilterEmptySetsSelectEverything(t *testing.T) {
	f := FactoryNewFilter[Position](nil, nil, nil)

	q := FactoryNewQuery1(f)
	ids := q.Ids()
	if len(ids) != 1 || ids[0] != KeyFor[Position]() {
		t.Errorf("Ids() = %v, expected only the target key", ids)
	}

	all, anyOf, none := f.AllAnyNone()
	if len(all) != 0 || len(anyOf) != 0 || len(none) != 0 {
		t.Errorf("Expected empty membership sets, got %v %v %v", all, anyOf, none)
	}

	sto := Factory.NewStorage()
	if err := InsertSlice(sto, []Position{{1, 1}, {2, 2}}); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	view, err := q.Resolve(sto, KeyFor[cacheProbe]())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if view.Len() != 2 {
		t.Errorf("Unconstrained filter returned %d elements, expected 2", view.Len())
	}
}

// TestFilterSlotsUnique tests that every filter construction gets its own
// cache slot even for the same target type
func TestFilterSlotsUnique(t *testing.T) {
	f1 := FactoryNewFilter[Position](nil, nil, nil)
	f2 := FactoryNewFilter[Position](nil, nil, nil)
	if f1.slot == f2.slot {
		t.Error("Two filter values share one cache slot")
	}
}

// TestLengthMembership tests the position-as-identity membership policy
func TestLengthMembership(t *testing.T) {
	sto := Factory.NewStorage()
	// Position has 4 entries, Velocity 2, Health 0.
	if err := InsertSlice(sto, []Position{{}, {}, {}, {}}); err != nil {
		t.Fatalf("Failed to insert positions: %v", err)
	}
	if err := InsertSlice(sto, []Velocity{{}, {}}); err != nil {
		t.Fatalf("Failed to insert velocities: %v", err)
	}
	if err := InsertSlice(sto, []Health{}); err != nil {
		t.Fatalf("Failed to insert healths: %v", err)
	}

	tests := []struct {
		name             string
		all, anyOf, none []TypeKey
		wantLo, wantHi   int
	}{
		{"No constraints", nil, nil, nil, 0, 4},
		{"All requires shorter array", Types1[Velocity](), nil, nil, 0, 2},
		{"All with empty array", Types1[Health](), nil, nil, 0, 0},
		{"Any takes widest member", nil, Types2[Velocity, Position](), nil, 0, 4},
		{"Any narrower than target", nil, Types1[Velocity](), nil, 0, 2},
		{"None excludes prefix", nil, nil, Types1[Velocity](), 2, 4},
		{"None covers everything", Types1[Velocity](), nil, Types1[Position](), 2, 2},
	}

	policy := LengthMembership{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, err := policy.Restrict(sto, 4, tt.all, tt.anyOf, tt.none)
			if err != nil {
				t.Fatalf("Restrict failed: %v", err)
			}
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("Restrict = [%d, %d), expected [%d, %d)", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

// TestLengthMembershipMissingMember tests that an unregistered set member
// fails the query
func TestLengthMembershipMissingMember(t *testing.T) {
	type unregistered struct{ _ int }

	sto := Factory.NewStorage()
	if err := InsertSlice(sto, []Position{{}, {}}); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	_, _, err := LengthMembership{}.Restrict(sto, 2, Types1[unregistered](), nil, nil)
	if err == nil {
		t.Fatal("Expected error for unregistered set member")
	}
	var missing MissingComponentTypeError
	if !errors.As(err, &missing) {
		t.Errorf("Expected MissingComponentTypeError, got %T", err)
	}
}

// TestLengthMembershipOnStorage tests the policy wired through a query
func TestLengthMembershipOnStorage(t *testing.T) {
	sto := Factory.NewStorage()
	sto.SetMembership(LengthMembership{})

	if err := InsertSlice(sto, []Position{{1, 0}, {2, 0}, {3, 0}}); err != nil {
		t.Fatalf("Failed to insert positions: %v", err)
	}
	if err := InsertSlice(sto, []Velocity{{}}); err != nil {
		t.Fatalf("Failed to insert velocities: %v", err)
	}

	q := FactoryNewQuery1(FactoryNewFilter[Position](Types1[Velocity](), nil, nil))
	view, err := q.Resolve(sto, KeyFor[cacheProbe]())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if view.Len() != 1 {
		t.Fatalf("Restricted view length is %d, expected 1", view.Len())
	}
	if view.At(0).X != 1 {
		t.Errorf("Restricted view starts at %v, expected the first position", view.At(0))
	}
}
