package models

// Category is a service/goods category; categories form a tree via ParentID.
type Category struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	ParentID string     `json:"parentId,omitempty"`
	Children []Category `json:"children,omitempty"`
}
