package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ndelacroix/meetings-api/internal/models"
)

func (d *Database) CreateUser(u *models.User, atomic bool) error {
	return d.withTx(atomic, func(tx *gorm.DB) error {
		return storeErr("create user", tx.Create(u).Error)
	})
}

func (d *Database) UserByID(id uint) (*models.User, error) {
	return readByID[models.User](d, "read user", id)
}

// UserByName resolves the login key. Names are not guaranteed unique by
// the store; the first match wins.
func (d *Database) UserByName(name string) (*models.User, error) {
	var u models.User
	err := d.db.Where("name = ?", name).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("read user by name", err)
	}
	return &u, nil
}

func (d *Database) UsersByIDs(ids []uint) ([]models.User, error) {
	return readByIDSet[models.User](d, "read users by id list", ids)
}

func (d *Database) AllUsers() ([]models.User, error) {
	return readAll[models.User](d, "read all users")
}

func (d *Database) UpdateUser(u *models.User, atomic bool) error {
	return d.withTx(atomic, func(tx *gorm.DB) error {
		return storeErr("update user", tx.Save(u).Error)
	})
}

func (d *Database) DeleteUser(u *models.User, atomic bool) error {
	return d.withTx(atomic, func(tx *gorm.DB) error {
		return storeErr("delete user", tx.Delete(u).Error)
	})
}
