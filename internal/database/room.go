package database

import (
	"gorm.io/gorm"

	"github.com/ndelacroix/meetings-api/internal/models"
)

func (d *Database) CreateRoom(r *models.Room, atomic bool) error {
	return d.withTx(atomic, func(tx *gorm.DB) error {
		if err := tx.Omit("Meetings").Create(r).Error; err != nil {
			return storeErr("create room", err)
		}
		if len(r.Meetings) == 0 {
			return nil
		}
		return storeErr("link room meetings", tx.Model(r).Association("Meetings").Replace(r.Meetings))
	})
}

func (d *Database) RoomByID(id uint) (*models.Room, error) {
	return readByID[models.Room](d, "read room", id, "Meetings.Guests")
}

func (d *Database) AllRooms() ([]models.Room, error) {
	return readAll[models.Room](d, "read all rooms", "Meetings.Guests")
}

// RoomsByMeeting lists every room that has the given meeting scheduled.
func (d *Database) RoomsByMeeting(meetingID uint) ([]models.Room, error) {
	out := []models.Room{}
	err := d.db.Preload("Meetings.Guests").
		Joins("JOIN participants ON participants.room_id = rooms.id").
		Where("participants.meeting_id = ?", meetingID).
		Find(&out).Error
	if err != nil {
		return nil, storeErr("read rooms by meeting", err)
	}
	return out, nil
}

// UpdateRoom overwrites the row and fully replaces the meeting list: an
// empty list clears every association.
func (d *Database) UpdateRoom(r *models.Room, atomic bool) error {
	return d.withTx(atomic, func(tx *gorm.DB) error {
		if err := tx.Omit("Meetings").Save(r).Error; err != nil {
			return storeErr("update room", err)
		}
		assoc := tx.Model(r).Association("Meetings")
		if len(r.Meetings) == 0 {
			return storeErr("clear room meetings", assoc.Clear())
		}
		return storeErr("replace room meetings", assoc.Replace(r.Meetings))
	})
}

// DeleteRoomWithRelations clears the meeting associations and removes the
// row as one transaction, rolling both back on any failure.
func (d *Database) DeleteRoomWithRelations(r *models.Room) error {
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(r).Association("Meetings").Clear(); err != nil {
			return err
		}
		return tx.Delete(r).Error
	})
	return storeErr("delete room", err)
}
