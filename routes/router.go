package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Marmblshko/Simple-blog/config"
	"github.com/Marmblshko/Simple-blog/controllers"
	"github.com/Marmblshko/Simple-blog/middleware"
	"github.com/Marmblshko/Simple-blog/store"
	"github.com/Marmblshko/Simple-blog/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(s store.Store) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	if utils.Logger != nil {
		r.Use(utils.GinLogger(utils.Logger))
		r.Use(utils.GinRecovery(utils.Logger))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(s)
	postController := controllers.NewPostController(s)
	commentController := controllers.NewCommentController(s)
	likeController := controllers.NewLikeController(s)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.DELETE("/account", middleware.AuthRequired(), authController.DeleteAccount)

	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:post_id", postController.GetPost)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	protected.POST("/posts", postController.CreatePost)
	protected.PUT("/posts/:post_id", postController.UpdatePost)
	protected.DELETE("/posts/:post_id", postController.DeletePost)

	protected.POST("/posts/:post_id/comments", commentController.CreateComment)
	protected.DELETE("/posts/:post_id/comments/:comment_id", commentController.DeleteComment)

	protected.POST("/posts/:post_id/likes", likeController.CreateLike)
	protected.DELETE("/posts/:post_id/likes/:like_id", likeController.DeleteLike)
	protected.POST("/comments/:comment_id/likes", likeController.CreateLike)
	protected.DELETE("/comments/:comment_id/likes/:like_id", likeController.DeleteLike)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "route not found")
	})

	return r
}
