package model

import "aperture/shared/model"

const (
	TableName  = "status_checks"
	EntityName = "status check"

	FieldID         = "id"
	FieldClientName = "client_name"
)

type StatusCheck struct {
	ID         string `db:"id"`
	ClientName string `db:"client_name"`
	model.Metadata
}
