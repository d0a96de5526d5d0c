package domain

// Category classifies goods.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryRequest creates or renames a category.
type CategoryRequest struct {
	Name string `json:"name"`
}
