package model

// Category is a shared, globally visible label.
// Unlike Movie it carries no owner: categories are not user-scoped.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
