// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел Go, которая позволяет
// использовать предсказуемый (seeded) рандом в каждом экземпляре движка.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает сид, с которым был создан сервис.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Fork создаёт независимый генератор, детерминированно выведенный из текущего.
func (s *PRNGService) Fork() *PRNGService {
	return NewPRNGService(s.rng.Int63() | 1)
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Int63 возвращает неотрицательное 63-битное число.
func (s *PRNGService) Int63() int64 {
	return s.rng.Int63()
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает число в диапазоне [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Spread возвращает число в диапазоне [-width/2, width/2).
func (s *PRNGService) Spread(width float64) float64 {
	return (s.rng.Float64() - 0.5) * width
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
