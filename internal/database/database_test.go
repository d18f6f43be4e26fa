package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ndelacroix/meetings-api/internal/models"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := Open(sqlite.Open(dsn))
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, d *Database, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Password: "hash"}
	require.NoError(t, d.CreateUser(u, true))
	require.NotZero(t, u.ID)
	return u
}

func seedMeeting(t *testing.T, d *Database, title string, guests ...models.User) *models.Meeting {
	t.Helper()
	m := &models.Meeting{
		Title:    title,
		Start:    time.Date(2020, 12, 24, 20, 0, 0, 0, time.UTC),
		Duration: 60,
		Guests:   guests,
	}
	require.NoError(t, d.CreateMeeting(m, true))
	require.NotZero(t, m.ID)
	return m
}

func guestLinkCount(t *testing.T, d *Database, meetingID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, d.db.Table("guests").Where("meeting_id = ?", meetingID).Count(&n).Error)
	return n
}

func TestReadByIDAbsentIsNotAnError(t *testing.T) {
	d := testDB(t)

	for i := 0; i < 2; i++ {
		u, err := d.UserByID(42)
		require.NoError(t, err)
		assert.Nil(t, u)
	}
}

func TestReadAllEmptyIsEmptyList(t *testing.T) {
	d := testDB(t)

	users, err := d.AllUsers()
	require.NoError(t, err)
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestReadByIDSetReturnsOnlyExisting(t *testing.T) {
	d := testDB(t)
	u1 := seedUser(t, d, "alice")
	u2 := seedUser(t, d, "bob")

	users, err := d.UsersByIDs([]uint{u1.ID, u2.ID, 9999})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = d.UsersByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestCreateMeetingPersistsGuestLinks(t *testing.T) {
	d := testDB(t)
	u1 := seedUser(t, d, "alice")
	u2 := seedUser(t, d, "bob")

	m := seedMeeting(t, d, "standup", *u1, *u2)

	stored, err := d.MeetingByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Guests, 2)
	assert.EqualValues(t, 2, guestLinkCount(t, d, m.ID))
}

func TestMeetingsByGuest(t *testing.T) {
	d := testDB(t)
	u1 := seedUser(t, d, "alice")
	u2 := seedUser(t, d, "bob")
	seedMeeting(t, d, "with alice", *u1)
	seedMeeting(t, d, "with both", *u1, *u2)
	seedMeeting(t, d, "nobody")

	meetings, err := d.MeetingsByGuest(u1.ID)
	require.NoError(t, err)
	assert.Len(t, meetings, 2)

	meetings, err = d.MeetingsByGuest(u2.ID)
	require.NoError(t, err)
	assert.Len(t, meetings, 1)
}

func TestUpdateMeetingReplacesGuestList(t *testing.T) {
	d := testDB(t)
	u1 := seedUser(t, d, "alice")
	u2 := seedUser(t, d, "bob")
	m := seedMeeting(t, d, "standup", *u1)

	m.Guests = []models.User{*u2}
	require.NoError(t, d.UpdateMeeting(m, true))

	stored, err := d.MeetingByID(m.ID)
	require.NoError(t, err)
	require.Len(t, stored.Guests, 1)
	assert.Equal(t, u2.ID, stored.Guests[0].ID)
}

func TestUpdateMeetingWithEmptyListClearsGuests(t *testing.T) {
	d := testDB(t)
	u1 := seedUser(t, d, "alice")
	m := seedMeeting(t, d, "standup", *u1)

	m.Guests = nil
	require.NoError(t, d.UpdateMeeting(m, true))

	stored, err := d.MeetingByID(m.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Guests)
	assert.Zero(t, guestLinkCount(t, d, m.ID))
}

func TestDeleteMeetingWithRelations(t *testing.T) {
	d := testDB(t)
	u1 := seedUser(t, d, "alice")
	m := seedMeeting(t, d, "standup", *u1)

	require.NoError(t, d.DeleteMeetingWithRelations(m))

	stored, err := d.MeetingByID(m.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Zero(t, guestLinkCount(t, d, m.ID))
}

func TestWithTxRollsBackClearedRelations(t *testing.T) {
	d := testDB(t)
	u1 := seedUser(t, d, "alice")
	m := seedMeeting(t, d, "standup", *u1)

	boom := errors.New("boom")
	err := d.withTx(true, func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("Guests").Clear(); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := d.MeetingByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Len(t, stored.Guests, 1)
	assert.EqualValues(t, 1, guestLinkCount(t, d, m.ID))
}

func TestDeleteRoomWithRelations(t *testing.T) {
	d := testDB(t)
	m := seedMeeting(t, d, "standup")
	r := &models.Room{Name: "blue", Capacity: 8, Meetings: []models.Meeting{*m}}
	require.NoError(t, d.CreateRoom(r, true))

	var links int64
	require.NoError(t, d.db.Table("participants").Where("room_id = ?", r.ID).Count(&links).Error)
	require.EqualValues(t, 1, links)

	require.NoError(t, d.DeleteRoomWithRelations(r))

	stored, err := d.RoomByID(r.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
	require.NoError(t, d.db.Table("participants").Where("room_id = ?", r.ID).Count(&links).Error)
	assert.Zero(t, links)

	// the meeting itself survives the room deletion
	kept, err := d.MeetingByID(m.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestRoomsByMeeting(t *testing.T) {
	d := testDB(t)
	m := seedMeeting(t, d, "standup")
	other := seedMeeting(t, d, "retro")
	r := &models.Room{Name: "blue", Meetings: []models.Meeting{*m}}
	require.NoError(t, d.CreateRoom(r, true))

	rooms, err := d.RoomsByMeeting(m.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "blue", rooms[0].Name)

	rooms, err = d.RoomsByMeeting(other.ID)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestStoreErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := storeErr("read user", cause)

	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "read user", se.Op)
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, storeErr("read user", nil))
}
