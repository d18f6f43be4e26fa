package server

import (
	"github.com/gin-gonic/gin"

	"github.com/ndelacroix/meetings-api/internal/database"
	"github.com/ndelacroix/meetings-api/internal/handlers"
	"github.com/ndelacroix/meetings-api/pkg/auth"
)

// Routes registers the full HTTP surface. Read endpoints are public;
// create/update/delete go through the token check first.
func Routes(r *gin.Engine, db *database.Database, tokens *auth.TokenManager, hasher *auth.PasswordHasher) {
	authH := handlers.NewAuthHandler(db, tokens, hasher)
	userH := handlers.NewUserHandler(db, hasher)
	meetingH := handlers.NewMeetingHandler(db)
	roomH := handlers.NewRoomHandler(db)
	withToken := handlers.RequireToken(tokens)

	r.POST("/authentication/login", authH.Login)

	users := r.Group("/users")
	{
		users.GET("/all", userH.List)
		users.GET("/getById", userH.GetByID)
		users.POST("/add", withToken, userH.Create)
		users.PUT("/update", withToken, userH.Update)
		users.DELETE("/delete", withToken, userH.Delete)
	}

	meetings := r.Group("/meetings")
	{
		meetings.GET("/all", meetingH.List)
		meetings.GET("/getById", meetingH.GetByID)
		meetings.GET("/getByUserId", meetingH.GetByUser)
		meetings.POST("/add", withToken, meetingH.Create)
		meetings.PUT("/update", withToken, meetingH.Update)
		meetings.DELETE("/delete", withToken, meetingH.Delete)
	}

	room := r.Group("/room")
	{
		room.GET("/all", roomH.List)
		room.GET("/getById", roomH.GetByID)
		room.GET("/getByMeetingId", roomH.GetByMeeting)
		room.POST("/add", withToken, roomH.Create)
		room.PUT("/update", withToken, roomH.Update)
		room.DELETE("/delete", withToken, roomH.Delete)
	}
}
