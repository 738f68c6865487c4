package controller

import (
	"errors"

	"github.com/NLarchive/ai-learning-roadmap/internal/repository"
	"github.com/NLarchive/ai-learning-roadmap/internal/service"
	"github.com/NLarchive/ai-learning-roadmap/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController 对外暴露水合后的目录数据包及其切片
type CatalogController struct {
	Hydration *service.HydrationService
}

func NewCatalogController(hydration *service.HydrationService) *CatalogController {
	return &CatalogController{Hydration: hydration}
}

// respondCatalogError 目录源不可用返回 502（前端展示重试入口），
// 其余按内部错误处理。
func respondCatalogError(ctx *gin.Context, err error) {
	var unavailable *repository.ResourceUnavailableError
	if errors.As(err, &unavailable) {
		util.BadGateway(ctx, unavailable.Error())
		return
	}
	util.LogInternalError(ctx, err)
}

// @Summary 获取全量数据包
// @Description 返回水合后的完整目录数据包（课程、分类、路径、站外资源、统计）
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=model.Bundle}
// @Failure 502 {object} util.Response "目录源不可用"
// @Router /bundle [get]
func (c *CatalogController) GetBundle(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, bundle)
}

// @Summary 获取课程列表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /courses [get]
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, bundle.Courses)
}

// @Summary 获取单个课程
// @Tags 目录
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}

	course, ok := bundle.CoursesMap[ctx.Param("id")]
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, course)
}

// @Summary 获取分类表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=map[string]model.Category}
// @Router /categories [get]
func (c *CatalogController) GetCategories(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, bundle.Categories)
}

// @Summary 获取全部职业路径
// @Description 路径的 stages 已水合，课程ID替换为完整课程对象
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=map[string]model.CareerPath}
// @Router /paths [get]
func (c *CatalogController) GetPaths(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, bundle.Paths)
}

// @Summary 获取单个职业路径
// @Tags 目录
// @Produce json
// @Param id path string true "路径ID"
// @Success 200 {object} util.Response{data=model.CareerPath}
// @Failure 404 {object} util.Response
// @Router /paths/{id} [get]
func (c *CatalogController) GetPath(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}

	path, ok := bundle.Paths[ctx.Param("id")]
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, path)
}

// @Summary 获取站外资源列表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ExternalResource}
// @Router /external-resources [get]
func (c *CatalogController) GetExternalResources(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, bundle.ExternalResources)
}

// @Summary 获取目录统计
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=model.Stats}
// @Router /stats [get]
func (c *CatalogController) GetStats(ctx *gin.Context) {
	bundle, err := c.Hydration.Bundle(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, bundle.Stats)
}

// @Summary 手动刷新目录
// @Description 清空全部缓存并立即重建数据包，返回新统计
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=model.Stats}
// @Failure 502 {object} util.Response "目录源不可用"
// @Router /catalog/refresh [post]
func (c *CatalogController) Refresh(ctx *gin.Context) {
	bundle, err := c.Hydration.Refresh(ctx.Request.Context())
	if err != nil {
		respondCatalogError(ctx, err)
		return
	}
	util.Success(ctx, bundle.Stats)
}
