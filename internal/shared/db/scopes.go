package db

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows whose column equals ownerID. A nil
// owner leaves the query unscoped, which is how admin listings read.
//
// Example usage:
//
//	db.Model(&models.TicketModel{}).Scopes(db.OwnedBy("owner_id", filter.OwnerID)).Find(&rows)
func OwnedBy(column string, ownerID *uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if ownerID == nil {
			return db
		}
		return db.Where(column+" = ?", *ownerID)
	}
}

// StatusIs filters on the status column when status is set.
func StatusIs(status *string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("status = ?", *status)
	}
}
