package controller

import (
	"errors"
	"fmt"
	"study_tracker_backend/internal/model"
	"study_tracker_backend/internal/repository"
	"study_tracker_backend/internal/service"
	"study_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ResourceController 单表资源的通用 HTTP 处理器
type ResourceController[T any, PT model.RecordPtr[T]] struct {
	Service  *service.ResourceService[T, PT]
	basePath string
}

func NewResourceController[T any, PT model.RecordPtr[T]](s *service.ResourceService[T, PT], basePath string) *ResourceController[T, PT] {
	return &ResourceController[T, PT]{Service: s, basePath: basePath}
}

// Register 按资源能力注册路由，静态路径与 /:id 可在 gin 中共存
func (c *ResourceController[T, PT]) Register(rg *gin.RouterGroup) {
	policy := c.Service.Policy()

	rg.GET("", c.List)
	rg.POST("", c.Create)
	rg.GET("/categories", c.Categories)
	if policy.Clear {
		rg.DELETE("/clear", c.Clear)
	}
	if policy.SeedMode != util.SeedNone {
		rg.POST("/seed", c.Seed)
	}

	rg.GET("/:id", c.Get)
	rg.PUT("/:id", c.Update)
	rg.DELETE("/:id", c.Delete)
	if policy.Favorite {
		rg.POST("/:id/favorite", c.ToggleFavorite)
	}
}

type listQuery struct {
	Category string `form:"category"`
	Type     string `form:"type"`
	Status   string `form:"status"`
	Favorite *bool  `form:"favorite"`
	From     string `form:"from"`
	To       string `form:"to"`
}

// List godoc
// @Summary 资源列表
// @Description category/status 精确匹配；systemdesign 支持 favorite；studysessions 支持 from/to（含边界）与 type
// @Tags 学习资源
// @Produce json
// @Param resource path string true "资源名" Enums(aspnetcore, designpatterns, systemdesign, csharp, efcore, studysessions)
// @Param category query string false "分类"
// @Param status query string false "状态"
// @Param favorite query bool false "仅收藏（systemdesign）"
// @Param from query string false "起始日期（studysessions）"
// @Param to query string false "结束日期（studysessions）"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/{resource} [get]
func (c *ResourceController[T, PT]) List(ctx *gin.Context) {
	var q listQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	filter, err := c.buildFilter(q)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	items, err := c.Service.List(ctx.Request.Context(), filter)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

func (c *ResourceController[T, PT]) buildFilter(q listQuery) (repository.ListFilter, error) {
	policy := c.Service.Policy()
	filter := repository.ListFilter{
		Category: q.Category,
		Status:   q.Status,
	}
	if filter.Category == "" && policy.Columns.Category == "type" {
		filter.Category = q.Type
	}

	if policy.FavoriteFilter {
		filter.Favorite = q.Favorite
	}

	if policy.Columns.Date != "" {
		from, err := util.ParseTimeParam(q.From)
		if err != nil {
			return filter, err
		}
		to, err := util.ParseTimeParam(q.To)
		if err != nil {
			return filter, err
		}
		filter.From, filter.To = from, to
	}
	return filter, nil
}

// Get godoc
// @Summary 获取单条记录
// @Tags 学习资源
// @Produce json
// @Param resource path string true "资源名"
// @Param id path int true "ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/{resource}/{id} [get]
func (c *ResourceController[T, PT]) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	item, err := c.Service.Get(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// Create godoc
// @Summary 新建记录
// @Description 请求体中的 id 会被忽略，createdAt 由服务端写入
// @Tags 学习资源
// @Accept json
// @Produce json
// @Param resource path string true "资源名"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/{resource} [post]
func (c *ResourceController[T, PT]) Create(ctx *gin.Context) {
	item := PT(new(T))
	if err := ctx.ShouldBindJSON(item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Create(ctx.Request.Context(), item); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/%d", c.basePath, item.GetID()))
	util.Created(ctx, item)
}

// Update godoc
// @Summary 整体更新记录
// @Description 路径 id 必须与请求体 id 一致；version 过期时返回 409
// @Tags 学习资源
// @Accept json
// @Param resource path string true "资源名"
// @Param id path int true "ID"
// @Success 204
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/{resource}/{id} [put]
func (c *ResourceController[T, PT]) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	item := PT(new(T))
	if err := ctx.ShouldBindJSON(item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Update(ctx.Request.Context(), id, item); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// Delete godoc
// @Summary 删除记录
// @Tags 学习资源
// @Param resource path string true "资源名"
// @Param id path int true "ID"
// @Success 204
// @Failure 404 {object} util.Response
// @Router /api/{resource}/{id} [delete]
func (c *ResourceController[T, PT]) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.Service.Delete(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// ToggleFavorite godoc
// @Summary 切换收藏
// @Tags 学习资源
// @Produce json
// @Param resource path string true "资源名"
// @Param id path int true "ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/{resource}/{id}/favorite [post]
func (c *ResourceController[T, PT]) ToggleFavorite(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	item, err := c.Service.ToggleFavorite(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// Clear godoc
// @Summary 清空资源表
// @Tags 学习资源
// @Produce json
// @Param resource path string true "资源名"
// @Success 200 {object} util.Response
// @Router /api/{resource}/clear [delete]
func (c *ResourceController[T, PT]) Clear(ctx *gin.Context) {
	deleted, err := c.Service.Clear(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": deleted})
}

// Seed godoc
// @Summary 导入示例数据
// @Description systemdesign 仅在表为空时允许导入，其余资源会先清空再导入
// @Tags 学习资源
// @Produce json
// @Param resource path string true "资源名"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/{resource}/seed [post]
func (c *ResourceController[T, PT]) Seed(ctx *gin.Context) {
	inserted, err := c.Service.Seed(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"inserted": inserted})
}

// Categories godoc
// @Summary 分类列表
// @Tags 学习资源
// @Produce json
// @Param resource path string true "资源名"
// @Success 200 {object} util.Response
// @Router /api/{resource}/categories [get]
func (c *ResourceController[T, PT]) Categories(ctx *gin.Context) {
	categories, err := c.Service.Categories(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return 0, false
	}
	return id, true
}

// handleError 将业务错误映射为 HTTP 状态码
func handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrRecordNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrIDMismatch), errors.Is(err, util.ErrUnsupported):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrOptimisticLock), errors.Is(err, util.ErrTableNotEmpty):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
