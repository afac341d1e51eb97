package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"video-list-api/internal/client"
	"video-list-api/internal/handler"
	"video-list-api/internal/metrics"
	"video-list-api/internal/middleware"
	"video-list-api/internal/repository"
	"video-list-api/internal/service"
)

// Config carries everything the router needs to wire the service
type Config struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	JWTSecret   string
	BasePath    string
	Metrics     *metrics.Metrics
	YouTube     client.YouTubeClient
	CORSOrigins []string
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	listRepo := repository.NewVideoListRepository(cfg.DB)
	videoRepo := repository.NewVideoRepository(cfg.DB)
	tagRepo := repository.NewTagRepository(cfg.DB)
	fieldRepo := repository.NewCustomFieldRepository(cfg.DB)
	schemaRepo := repository.NewFieldSchemaRepository(cfg.DB)
	valueRepo := repository.NewFieldValueRepository(cfg.DB)

	// Services
	listService := service.NewVideoListService(listRepo, cfg.Metrics, cfg.Logger)
	valueService := service.NewFieldValueService(valueRepo, fieldRepo, videoRepo, listRepo)
	videoService := service.NewVideoService(videoRepo, listRepo, valueService, cfg.YouTube, cfg.Metrics, cfg.Logger)
	tagService := service.NewTagService(tagRepo, videoRepo, schemaRepo, listRepo)
	fieldService := service.NewCustomFieldService(fieldRepo, listRepo)
	schemaService := service.NewFieldSchemaService(schemaRepo, fieldRepo, listRepo)

	// Handlers
	listHandler := handler.NewVideoListHandler(listService)
	videoHandler := handler.NewVideoHandler(videoService)
	tagHandler := handler.NewTagHandler(tagService)
	fieldHandler := handler.NewCustomFieldHandler(fieldService)
	schemaHandler := handler.NewFieldSchemaHandler(schemaService)
	valueHandler := handler.NewFieldValueHandler(valueService)

	// Health and metrics live at the root and under the base path so both
	// the ingress and in-cluster probes can reach them
	registerOps(r.Group(""), cfg.DB)
	if cfg.BasePath != "" {
		registerOps(r.Group(cfg.BasePath), cfg.DB)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.BasePath)
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		api.POST("", listHandler.CreateList)
		api.GET("", listHandler.GetMyLists)
		api.GET("/:listId", listHandler.GetList)
		api.PATCH("/:listId", listHandler.UpdateList)
		api.DELETE("/:listId", listHandler.DeleteList)

		videos := api.Group("/:listId/videos")
		{
			videos.POST("", videoHandler.CreateVideo)
			videos.GET("", videoHandler.GetVideos)
			videos.POST("/import", videoHandler.ImportVideos)
			videos.GET("/:videoId", videoHandler.GetVideo)
			videos.PATCH("/:videoId", videoHandler.UpdateVideo)
			videos.DELETE("/:videoId", videoHandler.DeleteVideo)
			videos.POST("/:videoId/metadata", videoHandler.RefreshMetadata)

			videos.PUT("/:videoId/tags", tagHandler.ReplaceVideoTags)
			videos.POST("/:videoId/tags", tagHandler.AssignTag)
			videos.DELETE("/:videoId/tags/:tagId", tagHandler.RemoveTag)

			videos.PUT("/:videoId/field-values", valueHandler.SetVideoFieldValues)
		}

		tags := api.Group("/:listId/tags")
		{
			tags.POST("", tagHandler.CreateTag)
			tags.GET("", tagHandler.GetTags)
			tags.PATCH("/:tagId", tagHandler.UpdateTag)
			tags.DELETE("/:tagId", tagHandler.DeleteTag)
		}

		fields := api.Group("/:listId/fields")
		{
			fields.POST("", fieldHandler.CreateField)
			fields.GET("", fieldHandler.GetFields)
			fields.GET("/:fieldId", fieldHandler.GetField)
			fields.PATCH("/:fieldId", fieldHandler.UpdateField)
			fields.DELETE("/:fieldId", fieldHandler.DeleteField)
		}

		schemas := api.Group("/:listId/schemas")
		{
			schemas.POST("", schemaHandler.CreateSchema)
			schemas.GET("", schemaHandler.GetSchemas)
			schemas.GET("/:schemaId", schemaHandler.GetSchema)
			schemas.PATCH("/:schemaId", schemaHandler.UpdateSchema)
			schemas.DELETE("/:schemaId", schemaHandler.DeleteSchema)
			schemas.POST("/:schemaId/fields", schemaHandler.AttachField)
			schemas.PUT("/:schemaId/fields/order", schemaHandler.ReorderFields)
			schemas.DELETE("/:schemaId/fields/:fieldId", schemaHandler.DetachField)
		}

		api.POST("/:listId/field-values/batch", valueHandler.BatchSetFieldValues)
	}

	return r
}

// registerOps attaches the unauthenticated operational endpoints
func registerOps(g *gin.RouterGroup, db *gorm.DB) {
	g.GET("/health", func(c *gin.Context) {
		status := "ok"
		dbStatus := "connected"
		if db == nil {
			status = "degraded"
			dbStatus = "disconnected"
		} else if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			dbStatus = "disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"database": dbStatus,
		})
	})
	g.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
