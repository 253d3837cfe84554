package validation

// Rule checks one field constraint and records any violation on the Result.
type Rule[T any] func(entity T, res *Result)

// Validator runs an ordered rule list over an entity. Every rule always runs,
// so a caller sees all violations at once rather than only the first.
type Validator[T any] struct {
	rules []Rule[T]
}

func NewValidator[T any](rules ...Rule[T]) Validator[T] {
	return Validator[T]{rules: rules}
}

func (v Validator[T]) Validate(entity T) *Result {
	res := &Result{}
	for _, rule := range v.rules {
		rule(entity, res)
	}
	return res
}
