package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ndelacroix/meetings-api/internal/database"
	"github.com/ndelacroix/meetings-api/internal/models"
)

type MeetingHandler struct {
	db *database.Database
}

func NewMeetingHandler(db *database.Database) *MeetingHandler {
	return &MeetingHandler{db: db}
}

func (h *MeetingHandler) List(c *gin.Context) {
	meetings, err := h.db.AllMeetings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) GetByID(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier")
	if !ok {
		return
	}
	meeting, err := h.db.MeetingByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if meeting == nil {
		respondError(c, http.StatusNotFound, "meeting not found")
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// GetByUser lists the meetings a given user is invited to. The id
// parameter is the user id.
func (h *MeetingHandler) GetByUser(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier")
	if !ok {
		return
	}
	meetings, err := h.db.MeetingsByGuest(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *MeetingHandler) Create(c *gin.Context) {
	meeting, err := h.meetingFromParams(c)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if err := h.db.CreateMeeting(meeting, true); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

func (h *MeetingHandler) Update(c *gin.Context) {
	meeting, err := h.meetingFromParams(c)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	id, ok := requireID(c, "you must provide the identifier of the meeting to update")
	if !ok {
		return
	}
	existing, err := h.db.MeetingByID(id)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if existing == nil {
		respondError(c, http.StatusPreconditionFailed, "no meeting found with this identifier")
		return
	}
	meeting.ID = id
	if err := h.db.UpdateMeeting(meeting, true); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) Delete(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier of the meeting to delete")
	if !ok {
		return
	}
	existing, err := h.db.MeetingByID(id)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if existing == nil {
		respondError(c, http.StatusPreconditionFailed, "no meeting found with this identifier")
		return
	}
	if err := h.db.DeleteMeetingWithRelations(existing); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *MeetingHandler) meetingFromParams(c *gin.Context) (*models.Meeting, error) {
	title, hasTitle := lookupParam(c, "title")
	rawStart, hasStart := lookupParam(c, "start")
	rawDuration, hasDuration := lookupParam(c, "duration")
	guests, hasGuests := lookupParam(c, "guests")
	if !hasTitle || !hasStart || !hasDuration {
		return nil, validationError("you must provide at least the title, the start date/time and the duration of the meeting")
	}
	start, err := models.ParseStart(rawStart)
	if err != nil {
		return nil, validationError(fmt.Sprintf(
			"the provided start date cannot be converted (expected format: {DD/MM/YYYY HH:MM} received: {%s})", rawStart))
	}
	duration, err := strconv.ParseUint(rawDuration, 10, 31)
	if err != nil {
		return nil, validationError("the provided duration is not an integer")
	}
	meeting := &models.Meeting{Title: title, Start: start, Duration: int(duration)}
	if hasGuests && strings.TrimSpace(guests) != "" {
		resolved, err := h.resolveGuests(guests)
		if err != nil {
			return nil, err
		}
		meeting.Guests = resolved
	}
	return meeting, nil
}

// resolveGuests turns the comma-separated id list into users, rejecting
// the whole request if any id is unknown.
func (h *MeetingHandler) resolveGuests(commaSeparatedIDs string) ([]models.User, error) {
	ids, err := parseIDList(commaSeparatedIDs, "the guest list is not a sequence of identifiers")
	if err != nil {
		return nil, err
	}
	users, err := h.db.UsersByIDs(ids)
	if err != nil {
		return nil, validationError("could not read the guest list")
	}
	if len(users) != len(ids) {
		return nil, validationError("the guest list references at least one unknown user")
	}
	return users, nil
}
