package controller

import (
	"errors"
	"io"

	"github.com/NLarchive/ai-learning-roadmap/internal/middleware"
	"github.com/NLarchive/ai-learning-roadmap/internal/service"
	"github.com/NLarchive/ai-learning-roadmap/internal/util"

	"github.com/gin-gonic/gin"
)

// CompletionController 完成勾选状态的读写接口
type CompletionController struct {
	Service *service.CompletionService
}

func NewCompletionController(s *service.CompletionService) *CompletionController {
	return &CompletionController{Service: s}
}

// @Summary 获取已完成课程集合
// @Tags 完成状态
// @Produce json
// @Param X-Client-ID header string false "客户端标识，缺省用Cookie"
// @Success 200 {object} util.Response{data=[]string}
// @Router /completions [get]
func (c *CompletionController) List(ctx *gin.Context) {
	ids, err := c.Service.ListCompleted(middleware.GetClientID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ids)
}

// @Summary 勾选/取消勾选课程完成状态
// @Tags 完成状态
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "客户端标识，缺省用Cookie"
// @Param courseId path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "课程不存在"
// @Router /completions/{courseId} [put]
func (c *CompletionController) Set(ctx *gin.Context) {
	// body 可省略，默认勾选为已完成
	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	err := c.Service.SetCompletion(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("courseId"), completed)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courseId": ctx.Param("courseId"), "completed": completed})
}

// @Summary 取消课程完成勾选
// @Tags 完成状态
// @Produce json
// @Param courseId path string true "课程ID"
// @Success 200 {object} util.Response
// @Router /completions/{courseId} [delete]
func (c *CompletionController) Unset(ctx *gin.Context) {
	err := c.Service.SetCompletion(ctx.Request.Context(), middleware.GetClientID(ctx), ctx.Param("courseId"), false)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"courseId": ctx.Param("courseId"), "completed": false})
}

// @Summary 清空完成勾选
// @Tags 完成状态
// @Produce json
// @Success 200 {object} util.Response
// @Router /completions [delete]
func (c *CompletionController) Clear(ctx *gin.Context) {
	if err := c.Service.ClearAll(middleware.GetClientID(ctx)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
