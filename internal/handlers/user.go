package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/ndelacroix/meetings-api/internal/database"
	"github.com/ndelacroix/meetings-api/internal/models"
	"github.com/ndelacroix/meetings-api/pkg/auth"
)

var emailPattern = regexp.MustCompile(`(?i)^[\w+-]+(\.\w+)*@[\w-]+(\.\w+)*(\.[a-z]{2,})$`)

type UserHandler struct {
	db     *database.Database
	hasher *auth.PasswordHasher
}

func NewUserHandler(db *database.Database, hasher *auth.PasswordHasher) *UserHandler {
	return &UserHandler{db: db, hasher: hasher}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.db.AllUsers()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier")
	if !ok {
		return
	}
	user, err := h.db.UserByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	user, err := h.userFromParams(c)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if err := h.db.CreateUser(user, true); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	user, err := h.userFromParams(c)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	id, ok := requireID(c, "you must provide at least the identifier, the name and the password")
	if !ok {
		return
	}
	existing, err := h.db.UserByID(id)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if existing == nil {
		respondError(c, http.StatusPreconditionFailed, "no user found with this identifier")
		return
	}
	user.ID = id
	if err := h.db.UpdateUser(user, true); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := requireID(c, "you must provide the identifier of the user to delete")
	if !ok {
		return
	}
	existing, err := h.db.UserByID(id)
	if err != nil {
		respondError(c, http.StatusPreconditionFailed, err.Error())
		return
	}
	if existing == nil {
		respondError(c, http.StatusPreconditionFailed, "no user found with this identifier")
		return
	}
	if err := h.db.DeleteUser(existing, true); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, existing)
}

// userFromParams validates the payload and returns a user carrying the
// hashed password; the plaintext never travels further than this point.
func (h *UserHandler) userFromParams(c *gin.Context) (*models.User, error) {
	name, hasName := lookupParam(c, "name")
	pwd, hasPwd := lookupParam(c, "pwd")
	firstName, _ := lookupParam(c, "firstName")
	mail, hasMail := lookupParam(c, "mail")
	if !hasName || !hasPwd {
		return nil, validationError("you must provide at least the name and the password")
	}
	if hasMail && !emailPattern.MatchString(mail) {
		return nil, validationError("you must provide a valid email address")
	}
	return &models.User{
		Name:      name,
		FirstName: firstName,
		Email:     mail,
		Password:  h.hasher.Hash(pwd),
	}, nil
}
