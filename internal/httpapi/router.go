package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/schoolconnect/school-connect/internal/common"
	"github.com/schoolconnect/school-connect/internal/httpapi/handlers"
	"github.com/schoolconnect/school-connect/internal/httpapi/middleware"
	"github.com/schoolconnect/school-connect/internal/ws"
)

func NewRouter(h *handlers.Handler, wsHandler *ws.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization", "X-Request-ID")
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, 40400, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, 40500, "method not allowed")
	})

	r.GET("/ping", h.Ping)

	api := r.Group("/api")

	api.GET("/schools", h.GetSchools)
	api.POST("/register", h.Register)
	api.GET("/classmates/:user_id", h.GetClassmates)

	api.POST("/assignments", h.CreateAssignment)
	api.GET("/assignments/:user_id", h.ListAssignments)
	api.PUT("/assignments/:assignment_id", h.UpdateAssignment)

	api.POST("/help-requests", h.CreateHelpRequest)
	api.GET("/help-requests", h.ListHelpRequests)
	api.POST("/help-requests/:request_id/respond", h.RespondToHelpRequest)

	api.POST("/ai-assistant", h.AskAssistant)
	api.POST("/ai-assistant/async", h.AskAssistantAsync)
	api.GET("/ai-assistant/jobs/:job_id", h.GetAssistantJob)

	api.POST("/gpa-calculator", h.CalculateGPA)
	api.POST("/mla-format", h.FormatMLACitation)
	api.GET("/academic-resources", h.GetAcademicResources)

	api.POST("/chat/rooms", h.CreateChatRoom)
	api.GET("/chat/rooms/:user_id", h.ListChatRooms)
	api.POST("/chat/rooms/:room_id/join", h.JoinChatRoom)
	api.POST("/chat/rooms/:room_id/leave", h.LeaveChatRoom)
	api.POST("/chat/messages", h.SendChatMessage)
	api.GET("/chat/messages/:room_id", h.ListChatMessages)

	api.GET("/ws/:room_id/:user_id", wsHandler.Handle)

	return r
}
