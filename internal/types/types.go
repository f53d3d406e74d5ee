// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности. Выдаётся монотонно
// возрастающим счётчиком ECS и не переиспользуется в пределах сессии.
type EntityID uint64

// NoEntity — нулевой идентификатор, никогда не выдаётся
const NoEntity EntityID = 0
