package models

// Category represents a transaction category.
//
// Categories form a forest of depth two: parent categories have no
// parent themselves and child categories have exactly one.
type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ParentID string   `json:"parentId,omitempty"`
	ChildIDs []string `json:"childIds,omitempty"`
}

// IsParent reports whether the category is a top-level category.
func (c Category) IsParent() bool {
	return c.ParentID == ""
}
