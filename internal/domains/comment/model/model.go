package model

import "aperture/shared/model"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID      = "id"
	FieldPhotoID = "photo_id"
	FieldName    = "name"
	FieldComment = "comment"
)

type Comment struct {
	ID      string `db:"id"`
	PhotoID string `db:"photo_id"`
	Name    string `db:"name"`
	Comment string `db:"comment"`
	model.Metadata
}
