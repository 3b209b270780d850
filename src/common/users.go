package common

import (
	"log"

	"rms/src/db"
	"rms/src/models"
	"rms/src/types"

	"gorm.io/gorm"
)

// AssignManager grants the manager role. This is an explicit step invoked
// by the user-administration endpoints (and by boot for the seeded admin),
// not a side effect of saving a user.
func AssignManager(userID uint) error {
	dbi := db.GetDb()
	err := dbi.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.
			Where(&models.User{ID: userID}).
			First(&user).
			Error; err != nil {
			return err
		}
		if user.Role == types.ROLE_ADMIN {
			// admins already hold the capability
			return nil
		}
		return tx.
			Model(&models.User{}).
			Where(&models.User{ID: userID}).
			Update("role", types.ROLE_MANAGER).
			Error
	})
	if err != nil {
		log.Printf("AssignManager failed for user [%d]: %s\n", userID, err.Error())
	}
	return err
}

func RemoveManager(userID uint) error {
	dbi := db.GetDb()
	err := dbi.Transaction(func(tx *gorm.DB) error {
		return tx.
			Model(&models.User{}).
			Where(&models.User{ID: userID, Role: types.ROLE_MANAGER}).
			Update("role", types.ROLE_CUSTOMER).
			Error
	})
	if err != nil {
		log.Printf("RemoveManager failed for user [%d]: %s\n", userID, err.Error())
	}
	return err
}
