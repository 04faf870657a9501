// internal/entity/pool.go
package entity

// Generator создаёт новую сущность для слота index.
type Generator[T any] func(index int) T

// Pool — арена сущностей фиксированной длины. Сущности никогда не удаляются,
// только перегенерируются на месте, поэтому длина постоянна между вызовами
// Initialize, а индексы стабильны в пределах тика.
type Pool[T any] struct {
	items        []T
	generate     Generator[T]
	replacements int
}

// NewPool создаёт пустой пул с заданным генератором.
func NewPool[T any](generate Generator[T]) *Pool[T] {
	return &Pool[T]{generate: generate}
}

// Initialize очищает пул и заполняет его count новыми сущностями.
// Память переиспользуется, если ёмкости хватает.
func (p *Pool[T]) Initialize(count int) {
	if count < 0 {
		count = 0
	}
	if cap(p.items) >= count {
		clear(p.items)
		p.items = p.items[:count]
	} else {
		p.items = make([]T, count)
	}
	for i := range p.items {
		p.items[i] = p.generate(i)
	}
	p.replacements = 0
}

// Replace перегенерирует сущность в слоте index по тем же правилам, что и при
// создании. O(1), без аллокаций в самом пуле.
func (p *Pool[T]) Replace(index int) {
	if index < 0 || index >= len(p.items) {
		return
	}
	p.items[index] = p.generate(index)
	p.replacements++
}

// At возвращает указатель на сущность в слоте index.
func (p *Pool[T]) At(index int) *T {
	return &p.items[index]
}

// Len — количество сущностей.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Items возвращает срез сущностей. Вызывающий не должен менять его длину.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Replacements — число замен с последнего Initialize.
func (p *Pool[T]) Replacements() int {
	return p.replacements
}
