// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"connect/internal/delivery/http/middleware"
	"connect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	FriendHandler   *handler.FriendHandler
	GroupHandler    *handler.GroupHandler
	PostHandler     *handler.PostHandler
	MessageHandler  *handler.MessageHandler
	LinkHandler     *handler.LinkHandler
	CampaignHandler *handler.CampaignHandler
	UploadHandler   *handler.UploadHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public short URL redirect. Lives outside /api so codes stay short.
	e.GET("/l/:code", p.LinkHandler.Redirect)

	api := e.Group("/api")

	// Auth routes. Me parses the token itself, see AuthHandler.Me.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/refresh", p.AuthHandler.Refresh)
		authGroup.POST("/logout", p.AuthHandler.Logout, authed)
		authGroup.GET("/me", p.AuthHandler.Me)
	}

	// User routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("", p.UserHandler.CreateUser)
		userGroup.GET("", p.UserHandler.ListUsers)
		userGroup.GET("/me/info", p.UserHandler.GetMyInfo, authed)
		userGroup.PUT("/me", p.UserHandler.UpdateProfile, authed)
		userGroup.GET("/:id", p.UserHandler.GetUser)
		userGroup.DELETE("/:id", p.UserHandler.DeleteUser, authed)
	}

	// Friendship routes, all scoped to the authenticated caller
	friendGroup := api.Group("/friends", authed)
	{
		friendGroup.POST("/request", p.FriendHandler.SendRequest)
		friendGroup.POST("/accept", p.FriendHandler.AcceptRequest)
		friendGroup.POST("/decline", p.FriendHandler.DeclineRequest)
		friendGroup.POST("/remove", p.FriendHandler.RemoveFriend)
		friendGroup.GET("", p.FriendHandler.ListFriends)
		friendGroup.GET("/requests", p.FriendHandler.ListPendingReceived)
		friendGroup.GET("/requests/sent", p.FriendHandler.ListPendingSent)
	}

	// Group routes
	groupGroup := api.Group("/groups", authed)
	{
		groupGroup.POST("", p.GroupHandler.CreateGroup)
		groupGroup.GET("", p.GroupHandler.ListMyGroups)
		groupGroup.GET("/:id", p.GroupHandler.GetGroup)
		groupGroup.DELETE("/:id", p.GroupHandler.DeleteGroup)
		groupGroup.POST("/:id/members/:userId", p.GroupHandler.AddMember)
		groupGroup.DELETE("/:id/members/:userId", p.GroupHandler.RemoveMember)
	}

	// Post, like, and comment routes
	postGroup := api.Group("/posts", authed)
	{
		postGroup.POST("", p.PostHandler.CreatePost)
		postGroup.GET("", p.PostHandler.ListFeed)
		postGroup.GET("/user/:userId", p.PostHandler.ListPostsByAuthor)
		postGroup.GET("/:id", p.PostHandler.GetPost)
		postGroup.PUT("/:id", p.PostHandler.UpdatePost)
		postGroup.DELETE("/:id", p.PostHandler.DeletePost)
		postGroup.POST("/:id/likes", p.PostHandler.LikePost)
		postGroup.DELETE("/:id/likes", p.PostHandler.UnlikePost)
		postGroup.POST("/:id/comments", p.PostHandler.AddComment)
		postGroup.GET("/:id/comments", p.PostHandler.ListComments)
		postGroup.DELETE("/comments/:commentId", p.PostHandler.DeleteComment)
	}

	// Direct message routes
	messageGroup := api.Group("/messages", authed)
	{
		messageGroup.GET("/conversations", p.MessageHandler.ListConversations)
		messageGroup.POST("/:userId", p.MessageHandler.SendMessage)
		messageGroup.GET("/:conversationId", p.MessageHandler.ListMessages)
		messageGroup.PUT("/:conversationId/read", p.MessageHandler.MarkRead)
	}

	// Short link routes. Resolve and the QR image are public so shared
	// links work without a session.
	linkGroup := api.Group("/links")
	{
		linkGroup.POST("", p.LinkHandler.CreateLink, authed)
		linkGroup.GET("/user/:userId", p.LinkHandler.ListByUser, authed)
		linkGroup.GET("/:code", p.LinkHandler.Resolve)
		linkGroup.GET("/:code/qr", p.LinkHandler.QRCode)
		linkGroup.DELETE("/:id", p.LinkHandler.DeleteLink, authed)
	}

	// Campaign routes
	campaignGroup := api.Group("/campaigns", authed)
	{
		campaignGroup.POST("", p.CampaignHandler.CreateCampaign)
		campaignGroup.GET("/user/:userId", p.CampaignHandler.ListByUser)
		campaignGroup.GET("/:id", p.CampaignHandler.GetCampaign)
		campaignGroup.PUT("/:id", p.CampaignHandler.UpdateCampaign)
		campaignGroup.DELETE("/:id", p.CampaignHandler.DeleteCampaign)
	}

	// Upload routes
	uploadGroup := api.Group("/uploads", authed)
	{
		uploadGroup.POST("/avatar", p.UploadHandler.UploadAvatar)
		uploadGroup.POST("/post", p.UploadHandler.UploadPostImage)
	}

	// Push device routes
	deviceGroup := api.Group("/devices", authed)
	{
		deviceGroup.POST("", p.DeviceHandler.RegisterDevice)
		deviceGroup.GET("", p.DeviceHandler.ListDevices)
		deviceGroup.DELETE("/:id", p.DeviceHandler.RemoveDevice)
	}
}
