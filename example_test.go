package depot_test

import (
	"fmt"

	"github.com/depot-ecs/depot"
)

// Label is a simple string payload component
type Label struct {
	Value string
}

// Score is a simple numeric component
type Score struct {
	Value int
}

// ScoreSystem reads labels and scores, and doubles every score in place
type ScoreSystem struct {
	read  depot.Query2[Label, Score]
	write depot.Query1[Score]
}

func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{
		read: depot.FactoryNewQuery2(
			depot.FactoryNewFilter[Label](nil, nil, nil),
			depot.FactoryNewFilter[Score](nil, nil, nil),
		),
		write: depot.FactoryNewQuery1(depot.FactoryNewFilter[Score](nil, nil, nil)),
	}
}

func (s *ScoreSystem) ReadQuery() depot.Source[depot.Views2[Label, Score]] {
	return s.read
}

func (s *ScoreSystem) WriteQuery() depot.MutSource[depot.MutView[Score]] {
	return s.write
}

func (s *ScoreSystem) Run(r depot.Views2[Label, Score], w depot.MutView[Score]) {
	for i := 0; i < r.A.Len(); i++ {
		fmt.Printf("%s has score %d\n", r.A.At(i).Value, r.B.At(i).Value)
	}
	for score := range w.All() {
		score.Value *= 2
	}
}

// Example shows basic depot usage with component arrays and one system
func Example_basic() {
	// Create storage and register component arrays
	storage := depot.Factory.NewStorage()
	depot.InsertSlice(storage, []Label{{"alpha"}, {"beta"}})
	depot.InsertSlice(storage, []Score{{10}, {20}})

	// Erase the system behind the Invokable contract and dispatch it
	system := depot.FactoryNewInvokable[depot.Views2[Label, Score], depot.MutView[Score]](NewScoreSystem())
	runner := depot.Factory.NewRunner(system)

	if err := runner.Run(storage); err != nil {
		fmt.Println("run failed:", err)
		return
	}

	// The system's mutations are visible through storage
	scores, _ := depot.ReadSlice[Score](storage)
	for i, sc := range scores {
		fmt.Printf("score %d is now %d\n", i, sc.Value)
	}

	// Output:
	// alpha has score 10
	// beta has score 20
	// score 0 is now 20
	// score 1 is now 40
}
