package controller

import (
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SystemDesignController 系统设计主题：通用资源接口 + 复习记录 + 收藏视图
type SystemDesignController struct {
	*ResourceController[model.SystemDesignTopic, *model.SystemDesignTopic]
	service *service.SystemDesignService
}

func NewSystemDesignController(s *service.SystemDesignService, basePath string) *SystemDesignController {
	return &SystemDesignController{
		ResourceController: NewResourceController(s.ResourceService, basePath),
		service:            s,
	}
}

func (c *SystemDesignController) Register(rg *gin.RouterGroup) {
	rg.GET("/favorites", c.Favorites)
	c.ResourceController.Register(rg)
	rg.POST("/:id/review", c.RecordReview)
}

type RecordReviewRequest struct {
	ConfidenceLevel int    `json:"confidenceLevel"`
	Status          string `json:"status" binding:"required"`
	Notes           string `json:"notes"`
}

// RecordReview godoc
// @Summary 记录一次复习
// @Description 更新复习时间、信心值和状态；notes 为空时保留原备注
// @Tags 系统设计
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param body body RecordReviewRequest true "复习结果"
// @Success 200 {object} util.Response{data=model.SystemDesignTopic}
// @Failure 404 {object} util.Response
// @Router /api/systemdesign/{id}/review [post]
func (c *SystemDesignController) RecordReview(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req RecordReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	topic, err := c.service.RecordReview(ctx.Request.Context(), id, service.ReviewInput{
		ConfidenceLevel: req.ConfidenceLevel,
		Status:          req.Status,
		Notes:           req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// Favorites godoc
// @Summary 收藏的系统设计主题
// @Description 按分类、标题升序
// @Tags 系统设计
// @Produce json
// @Success 200 {object} util.Response{data=[]model.SystemDesignTopic}
// @Router /api/systemdesign/favorites [get]
func (c *SystemDesignController) Favorites(ctx *gin.Context) {
	topics, err := c.service.Favorites(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}
