package routes

import (
	"grafica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions = "/conversion-sessions"
	PathRuns     = "/conversion-runs"
)

func addConversionRoutes(rg *gin.RouterGroup, sessionHandler *handlers.SessionHandler, conversionHandler *handlers.ConversionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.PUT("/:session_id/strategy", sessionHandler.SwitchStrategy)
		sessions.POST("/:session_id/acknowledge-duplication", sessionHandler.AcknowledgeDuplication)

		// Mutações de grupos (estratégia custom, sessão draft).
		sessions.POST("/:session_id/groups", sessionHandler.AddGroup)
		sessions.POST("/:session_id/groups/merge", sessionHandler.MergeGroups)
		sessions.POST("/:session_id/groups/:group_id/split", sessionHandler.SplitGroup)
		sessions.POST("/:session_id/groups/:group_id/duplicate", sessionHandler.DuplicateGroup)
		sessions.PATCH("/:session_id/groups/:group_id", sessionHandler.UpdateGroup)
		sessions.DELETE("/:session_id/groups/:group_id", sessionHandler.RemoveGroup)

		sessions.POST("/:session_id/validate", conversionHandler.ValidateSession)
		sessions.POST("/:session_id/convert", conversionHandler.Convert)
	}

	runs := rg.Group(PathRuns)
	{
		runs.GET("/:run_id", conversionHandler.GetRun)
	}
}
