// Package solver holds the pluggable relaxation strategy the World
// runs over its constraint groups each frame. It deliberately takes no
// generic vector parameter: the only things a relaxer needs from a
// constraint are ShouldSolve/Solve, which are the same two methods
// regardless of DIM, so keeping this package non-generic lets World
// swap relaxers without threading its vector type parameter through
// here too.
//
// Grounded in the teacher's physics/solver package, which isolates its
// Gauss-Seidel equation solver (gs.go) behind a small interface so
// physics.Simulation can swap solvers without the rest of the engine
// caring which one is in use.
package solver

// Constraint is the minimal surface a relaxer needs.
type Constraint interface {
	ShouldSolve() bool
	Solve()
}

// WorldView exposes a world's constraints to a relaxer without the
// relaxer needing to import the (generic) verlet package.
type WorldView interface {
	// ConstraintGroups returns each constraint type's live constraints,
	// in the fixed visitation order (Custom, Spring, Attraction).
	ConstraintGroups() [][]Constraint
}

// Relaxer runs one or more sweeps of constraint relaxation over a
// world's constraint groups.
type Relaxer interface {
	Relax(w WorldView, iterations int)
}

// GaussSeidel is the default relaxer: for each of iterations sweeps,
// visit every constraint group in order and solve every constraint
// that wants solving. Each solve reads whatever positions the
// previous solve in the same sweep already wrote -- the defining
// property of Gauss-Seidel relaxation, as opposed to Jacobi's
// read-all-then-write-all.
type GaussSeidel struct{}

func (GaussSeidel) Relax(w WorldView, iterations int) {
	groups := w.ConstraintGroups()
	for n := 0; n < iterations; n++ {
		for _, group := range groups {
			for _, c := range group {
				if c.ShouldSolve() {
					c.Solve()
				}
			}
		}
	}
}
