package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ndelacroix/meetings-api/internal/database"
	"github.com/ndelacroix/meetings-api/internal/models"
)

type RoomHandler struct {
	db *database.Database
}

func NewRoomHandler(db *database.Database) *RoomHandler {
	return &RoomHandler{db: db}
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.db.AllRooms()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) GetByID(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier")
	if !ok {
		return
	}
	room, err := h.db.RoomByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if room == nil {
		respondError(c, http.StatusNotFound, "room not found")
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetByMeeting lists the rooms a given meeting is scheduled in. The id
// parameter is the meeting id.
func (h *RoomHandler) GetByMeeting(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier")
	if !ok {
		return
	}
	rooms, err := h.db.RoomsByMeeting(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) Create(c *gin.Context) {
	room, err := h.roomFromParams(c)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if err := h.db.CreateRoom(room, true); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	room, err := h.roomFromParams(c)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	id, ok := requireID(c, "you must provide the identifier of the room to update")
	if !ok {
		return
	}
	existing, err := h.db.RoomByID(id)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if existing == nil {
		respondError(c, http.StatusPreconditionFailed, "no room found with this identifier")
		return
	}
	room.ID = id
	if err := h.db.UpdateRoom(room, true); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier of the room to delete")
	if !ok {
		return
	}
	existing, err := h.db.RoomByID(id)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if existing == nil {
		respondError(c, http.StatusPreconditionFailed, "no room found with this identifier")
		return
	}
	if err := h.db.DeleteRoomWithRelations(existing); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *RoomHandler) roomFromParams(c *gin.Context) (*models.Room, error) {
	name, hasName := lookupParam(c, "name")
	rawCapacity, hasCapacity := lookupParam(c, "capacity")
	meetings, hasMeetings := lookupParam(c, "meetings")
	if !hasName {
		return nil, validationError("you must provide at least the name of the room")
	}
	room := &models.Room{Name: name}
	if hasCapacity {
		// Capacity is parsed signed: negative values pass through, unlike
		// a meeting's duration.
		capacity, err := strconv.Atoi(rawCapacity)
		if err != nil {
			return nil, validationError("the provided capacity is not an integer")
		}
		room.Capacity = capacity
	}
	if hasMeetings && strings.TrimSpace(meetings) != "" {
		resolved, err := h.resolveMeetings(meetings)
		if err != nil {
			return nil, err
		}
		room.Meetings = resolved
	}
	return room, nil
}

// resolveMeetings turns the comma-separated id list into meetings,
// rejecting the whole request if any id is unknown.
func (h *RoomHandler) resolveMeetings(commaSeparatedIDs string) ([]models.Meeting, error) {
	ids, err := parseIDList(commaSeparatedIDs, "the meeting list is not a sequence of identifiers")
	if err != nil {
		return nil, err
	}
	found, err := h.db.MeetingsByIDs(ids)
	if err != nil {
		return nil, validationError("could not read the meeting list")
	}
	if len(found) != len(ids) {
		return nil, validationError("the meeting list references at least one unknown meeting")
	}
	return found, nil
}
