// internal/physics/overlap.go
package physics

import (
	"context"
	"go-tower-defense-3d/internal/types"
	"go-tower-defense-3d/pkg/geom"
	"iter"

	"golang.org/x/sync/errgroup"
)

// Overlap — пара тел, боксы которых пересеклись за последний шаг.
// A всегда вставлен в мир раньше B.
type Overlap struct {
	A, B types.EntityID
}

// Has сообщает, входит ли id в пару.
func (o Overlap) Has(id types.EntityID) bool {
	return o.A == id || o.B == id
}

// Other возвращает напарника id в паре.
func (o Overlap) Other(id types.EntityID) types.EntityID {
	if o.A == id {
		return o.B
	}
	return o.A
}

// overlapping проверяет пересечение на всём отрезке движения последнего Advance.
// Для тел, которые не двигались, это обычная проверка AABB.
func overlapping(a, b *Body) bool {
	return geom.SweptIntersects(a.startBox(), a.Displacement(), b.startBox(), b.Displacement())
}

// Overlaps лениво перечисляет все пересекающиеся пары в порядке вставки (i < j).
// Пересчитывается полностью при каждом вызове.
func (w *World) Overlaps() iter.Seq[Overlap] {
	return func(yield func(Overlap) bool) {
		for i, idA := range w.order {
			a := w.bodies[idA]
			for _, idB := range w.order[i+1:] {
				if !overlapping(a, w.bodies[idB]) {
					continue
				}
				if !yield(Overlap{A: idA, B: idB}) {
					return
				}
			}
		}
	}
}

// ParallelOverlaps делит внешний цикл между воркерами и сливает результаты
// в том же порядке, что и Overlaps. Возвращается только после завершения всех воркеров.
func (w *World) ParallelOverlaps(ctx context.Context, workers int) ([]Overlap, error) {
	n := len(w.order)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n < 2 {
		return nil, nil
	}

	// Строки i перебираются чересполосно: внутренний цикл короче для больших i
	rows := make([][]Overlap, n)
	eg, ctx := errgroup.WithContext(ctx)
	for wk := 0; wk < workers; wk++ {
		eg.Go(func() error {
			for i := wk; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				a := w.bodies[w.order[i]]
				var row []Overlap
				for _, idB := range w.order[i+1:] {
					if overlapping(a, w.bodies[idB]) {
						row = append(row, Overlap{A: w.order[i], B: idB})
					}
				}
				rows[i] = row
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []Overlap
	for _, row := range rows {
		out = append(out, row...)
	}
	return out, nil
}
