package payroll

import (
	"fmt"
	"net/http"

	"rhplus/internal/middleware"
	"rhplus/internal/shared/apperror"
	"rhplus/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateEntry(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		c.GetString(middleware.KeyEmployeeID),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter EntryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString(middleware.KeyCompanyID), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetPending(c *gin.Context) {
	resp, err := h.service.GetPendingApproval(c.Request.Context(), c.GetString(middleware.KeyCompanyID))
	if err != nil {
		response.FromError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByPeriod(c *gin.Context) {
	resp, err := h.service.GetByPeriod(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Query("period"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	resp, err := h.service.GetByEmployee(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Query("employee"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetEmployeeSummary(c *gin.Context) {
	resp, err := h.service.GetEmployeeSummary(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Query("employee"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBreakdown(c *gin.Context) {
	resp, err := h.service.GetBreakdown(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		c.GetString(middleware.KeyEmployeeID),
		c.Param("id"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AddDetail(c *gin.Context) {
	var req DetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.AddDetail(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateDetail(c *gin.Context) {
	var req UpdateDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateDetail(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		c.Param("id"),
		c.Param("detailId"),
		req,
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RemoveDetail(c *gin.Context) {
	resp, err := h.service.RemoveDetail(
		c.Request.Context(),
		c.GetString(middleware.KeyCompanyID),
		c.Param("id"),
		c.Param("detailId"),
	)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	url, err := h.service.PayslipURL(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *Handler) GetPeriodSummary(c *gin.Context) {
	resp, err := h.service.GetPeriodSummary(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ExportPeriod(c *gin.Context) {
	file, err := h.service.ExportPeriod(c.Request.Context(), c.GetString(middleware.KeyCompanyID), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, registerContentType, file.Content)
}
