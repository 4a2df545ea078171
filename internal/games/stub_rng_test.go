package games

// stubRNG отдает заранее заданные значения, по кругу
type stubRNG struct {
	ints   []int
	floats []float64
	i, f   int
}

func (s *stubRNG) Intn(n int) (int, error) {
	if len(s.ints) == 0 {
		return 0, nil
	}
	v := s.ints[s.i%len(s.ints)]
	s.i++
	if v >= n {
		v = n - 1
	}
	return v, nil
}

func (s *stubRNG) Float64() (float64, error) {
	if len(s.floats) == 0 {
		return 0, nil
	}
	v := s.floats[s.f%len(s.floats)]
	s.f++
	return v, nil
}

// identityShuffleRNG оставляет колоду в исходном порядке:
// для Фишера-Йетса возвращает j == i
type identityShuffleRNG struct{}

func (identityShuffleRNG) Intn(n int) (int, error) { return n - 1, nil }

func (identityShuffleRNG) Float64() (float64, error) { return 0, nil }
