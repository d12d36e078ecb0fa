package models

// MaxTagLength is the maximum length of a tag label in characters.
const MaxTagLength = 30

// Tag represents a transaction tag. The id is the label.
type Tag struct {
	ID string `json:"id"`
}
