package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Dead — true, когда здоровье опустилось до нуля или ниже.
func (h *Health) Dead() bool {
	return h.Value <= 0
}
