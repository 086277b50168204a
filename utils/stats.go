package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a completed generation. The rate is taken over the whole
// run from StartTime to now.
func (s *Stats) Update(generation int, population int, now time.Time) {
	s.TotalGenerations = generation
	s.Population = population
	if elapsed := now.Sub(s.StartTime); elapsed > 0 {
		s.GenerationsPerSecond = float64(generation) / elapsed.Seconds()
	}

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

func (s *Stats) String() string {
	return fmt.Sprintf("Generations: %d | Living: %d | Avg Pop: %.1f | %.1f gen/sec | Runtime: %.3fs",
		s.TotalGenerations, s.Population, s.AveragePopulation, s.GenerationsPerSecond,
		time.Since(s.StartTime).Seconds())
}
