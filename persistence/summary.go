package persistence

// Summary condenses one dimension of a diagram into the scalar features
// typically fed to a downstream classifier: how many classes lived, how
// long, and how many never died.
type Summary struct {
	Dimension int

	// Finite is the number of pairs with a finite death.
	Finite int

	// Essential is the number of classes alive past the studied range.
	Essential int

	// TotalPersistence, MaxPersistence and MeanPersistence are taken over
	// the finite pairs only; zero when there are none.
	TotalPersistence float64
	MaxPersistence   float64
	MeanPersistence  float64
}

// Summaries returns one Summary per dimension 0..MaxDimension.
func (d *Diagram) Summaries() []Summary {
	out := make([]Summary, d.MaxDimension+1)
	for dim := range out {
		out[dim].Dimension = dim
	}
	for _, p := range d.Pairs {
		s := &out[p.Dimension]
		if p.Infinite() {
			s.Essential++
			continue
		}
		life := p.Persistence()
		s.Finite++
		s.TotalPersistence += life
		if life > s.MaxPersistence {
			s.MaxPersistence = life
		}
	}
	for dim := range out {
		if n := out[dim].Finite; n > 0 {
			out[dim].MeanPersistence = out[dim].TotalPersistence / float64(n)
		}
	}

	return out
}
