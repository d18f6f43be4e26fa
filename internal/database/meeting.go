package database

import (
	"gorm.io/gorm"

	"github.com/ndelacroix/meetings-api/internal/models"
)

func (d *Database) CreateMeeting(m *models.Meeting, atomic bool) error {
	return d.withTx(atomic, func(tx *gorm.DB) error {
		if err := tx.Omit("Guests").Create(m).Error; err != nil {
			return storeErr("create meeting", err)
		}
		if len(m.Guests) == 0 {
			return nil
		}
		return storeErr("link meeting guests", tx.Model(m).Association("Guests").Replace(m.Guests))
	})
}

func (d *Database) MeetingByID(id uint) (*models.Meeting, error) {
	return readByID[models.Meeting](d, "read meeting", id, "Guests")
}

func (d *Database) MeetingsByIDs(ids []uint) ([]models.Meeting, error) {
	return readByIDSet[models.Meeting](d, "read meetings by id list", ids, "Guests")
}

func (d *Database) AllMeetings() ([]models.Meeting, error) {
	return readAll[models.Meeting](d, "read all meetings", "Guests")
}

// MeetingsByGuest lists every meeting that has the given user among its
// guests.
func (d *Database) MeetingsByGuest(userID uint) ([]models.Meeting, error) {
	out := []models.Meeting{}
	err := d.db.Preload("Guests").
		Joins("JOIN guests ON guests.meeting_id = meetings.id").
		Where("guests.user_id = ?", userID).
		Find(&out).Error
	if err != nil {
		return nil, storeErr("read meetings by guest", err)
	}
	return out, nil
}

// UpdateMeeting overwrites the row and fully replaces the guest list: an
// empty list clears every association.
func (d *Database) UpdateMeeting(m *models.Meeting, atomic bool) error {
	return d.withTx(atomic, func(tx *gorm.DB) error {
		if err := tx.Omit("Guests").Save(m).Error; err != nil {
			return storeErr("update meeting", err)
		}
		assoc := tx.Model(m).Association("Guests")
		if len(m.Guests) == 0 {
			return storeErr("clear meeting guests", assoc.Clear())
		}
		return storeErr("replace meeting guests", assoc.Replace(m.Guests))
	})
}

// DeleteMeetingWithRelations clears the guest associations and removes the
// row as one transaction. If either step fails both roll back, so no
// half-deleted meeting is ever visible.
func (d *Database) DeleteMeetingWithRelations(m *models.Meeting) error {
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("Guests").Clear(); err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	return storeErr("delete meeting", err)
}
