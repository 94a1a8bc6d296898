package routes

import (
	"github.com/gin-gonic/gin"

	resolutionhandlers "vendora/internal/interfaces/http/handlers/resolution"
	"vendora/internal/interfaces/http/middleware"
)

type ResolutionRouteConfig struct {
	IssueHandler   *resolutionhandlers.IssueHandler
	DisputeHandler *resolutionhandlers.DisputeHandler
	ThreadHandler  *resolutionhandlers.ThreadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupResolutionRoutes(engine *gin.Engine, config *ResolutionRouteConfig) {
	issues := engine.Group("/issues")
	issues.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		issues.POST("",
			config.IssueHandler.CreateIssue)
		issues.GET("",
			config.IssueHandler.ListIssues)
		issues.GET("/eligibility",
			config.IssueHandler.CheckEligibility)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		issues.POST("/:id/response",
			config.IssueHandler.RespondToIssue)
		issues.POST("/:id/close",
			config.IssueHandler.CloseIssue)
		issues.POST("/:id/escalate",
			config.IssueHandler.EscalateIssue)

		// Generic parameterized routes (must come LAST)
		issues.GET("/:id",
			config.IssueHandler.GetIssue)
	}

	disputes := engine.Group("/disputes")
	disputes.Use(config.AuthMiddleware.RequireAuth())
	{
		disputes.POST("",
			config.DisputeHandler.CreateDispute)
		disputes.GET("",
			config.DisputeHandler.ListDisputes)

		disputes.POST("/:id/review",
			config.DisputeHandler.MarkUnderReview)
		disputes.POST("/:id/response",
			config.DisputeHandler.RespondToDispute)
		disputes.POST("/:id/close",
			config.DisputeHandler.CloseDispute)
		disputes.POST("/:id/escalate",
			config.DisputeHandler.EscalateToClaim)

		disputes.GET("/:id",
			config.DisputeHandler.GetDispute)
	}

	// Message thread and evidence list shared by both case kinds.
	cases := engine.Group("/cases/:kind/:id")
	cases.Use(config.AuthMiddleware.RequireAuth())
	{
		cases.POST("/messages",
			config.ThreadHandler.AddMessage)
		cases.GET("/messages",
			config.ThreadHandler.ListMessages)
		cases.POST("/evidence",
			config.ThreadHandler.AddEvidence)
		cases.GET("/evidence",
			config.ThreadHandler.ListEvidence)
	}

	resolution := engine.Group("/resolution")
	resolution.Use(config.AuthMiddleware.RequireAuth())
	{
		resolution.GET("/stats",
			config.IssueHandler.GetStats)
	}
}
