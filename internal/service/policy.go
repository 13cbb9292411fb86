package service

import (
	"github.com/sarpras/borrowing-service/internal/model"
	"github.com/sarpras/borrowing-service/pkg/auth"
)

// Pure access predicates. Admins manage catalogs and statuses; owners may
// always view and delete their own requests.

func CanManageCatalog(actor auth.Actor) bool {
	return actor.IsAdmin()
}

func CanChangeStatus(actor auth.Actor) bool {
	return actor.IsAdmin()
}

func CanDelete(actor auth.Actor, req model.BorrowingRequest) bool {
	return actor.IsAdmin() || actor.ID == req.UserID
}

func CanViewAll(actor auth.Actor) bool {
	return actor.IsAdmin()
}
