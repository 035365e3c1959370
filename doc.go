/*
Package depot provides a component storage and query engine for
Entity-Component-System (ECS) style programs.

Depot stores one homogeneous, type-erased array per component type behind a
single Storage object. Systems declare which component types they read and
which they write through typed Filter and Query values, and receive typed
slice views over exactly those arrays when invoked. A per-call-site query
cache keeps the last materialized view for every (system, query slot) pair
so repeated invocations are cheap and stable across array resizes.

Core Concepts:

  - Component: a plain data type stored in a homogeneous array, one array
    per type, identified by a stable TypeKey.
  - Column: the type-erased array owned by Storage.
  - Filter: a descriptor naming a target component type plus three
    auxiliary type sets (all/any/none) used to restrict membership.
  - Query: a composition of one to three Filters producing typed views.
  - System: user logic plus a declared read Query and write Query, erased
    behind the object-safe Invokable contract.
  - Runner: drives a heterogeneous list of Invokables, sequentially or in
    conflict-free parallel batches derived from their read/write sets.

Basic Usage:

	// Create storage and register component arrays
	storage := depot.Factory.NewStorage()
	depot.InsertSlice(storage, []Position{{1, 2}, {3, 4}})
	depot.InsertSlice(storage, []Velocity{{0, 1}, {1, 0}})

	// Declare filters and queries
	positions := depot.FactoryNewFilter[Position](nil, nil, nil)
	velocities := depot.FactoryNewFilter[Velocity](nil, nil, nil)

	// A system reads velocities and writes positions
	move := depot.FactoryNewInvokable[depot.View[Velocity], depot.MutView[Position]](
		&MoveSystem{
			read:  depot.FactoryNewQuery1(velocities),
			write: depot.FactoryNewQuery1(positions),
		},
	)

	// Drive the dispatch list
	runner := depot.Factory.NewRunner(move)
	runner.Run(storage)

Storage issues at most one write view and any number of read views per
component array per invocation. Conflicting requests fail with
AliasConflictError instead of silently aliasing mutable memory.
*/
package depot
