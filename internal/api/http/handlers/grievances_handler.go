package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/grievance-service/internal/api/dto"
	"github.com/spec-kit/grievance-service/internal/domain"
	"github.com/spec-kit/grievance-service/internal/service"
	apperrors "github.com/spec-kit/grievance-service/pkg/util/errorutil"
)

const mobileListLimit = 5

// GrievancesHandler manages grievance CRUD endpoints.
type GrievancesHandler struct {
	service *service.GrievanceService
}

// NewGrievancesHandler constructs handler.
func NewGrievancesHandler(grievanceService *service.GrievanceService) *GrievancesHandler {
	return &GrievancesHandler{service: grievanceService}
}

// Create POST /api/grievances.
func (h *GrievancesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGrievanceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.GrievanceCreateInput{
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
		MobileNumber:     req.MobileNumber,
		OfficialEmail:    req.OfficialEmail,
		Designation:      req.Designation,
		Department:       req.Department,
		OfficeName:       req.OfficeName,
		DistrictName:     req.DistrictName,
		UserRole:         req.UserRole,
		Priority:         req.Priority,
		IssueTimestamp:   req.IssueTimestamp,
		IssueCategory:    req.IssueCategory,
		IssueSubCategory: req.IssueSubCategory,
		IssueRelated:     req.IssueRelated,
		IssueSection:     req.IssueSection,
		IssueSubSection:  req.IssueSubSection,
		Subject:          req.Subject,
		Description:      req.Description,
	}
	grievance, err := h.service.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    dto.NewGrievanceResponse(grievance),
		"message": "Grievance registered successfully",
	})
}

// GetByTicket GET /api/grievances/ticket/:ticket.
func (h *GrievancesHandler) GetByTicket(c *fiber.Ctx) error {
	ticket := strings.TrimSpace(c.Params("ticket"))
	if ticket == "" {
		return apperrors.NewValidationError("ticket required", nil)
	}
	grievance, err := h.service.GetByTicket(c.Context(), ticket)
	if err != nil {
		if apperrors.IsCode(err, "NOT_FOUND") {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "No grievance found for ticket " + ticket,
			})
		}
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewGrievanceResponse(grievance),
	})
}

// ListByMobile GET /api/grievances/mobile/:mobileNumber. Returns the latest
// five records, newest first.
func (h *GrievancesHandler) ListByMobile(c *fiber.Ctx) error {
	mobile := strings.TrimSpace(c.Params("mobileNumber"))
	if mobile == "" {
		return apperrors.NewValidationError("mobile number required", nil)
	}
	items, err := h.service.ListByMobile(c.Context(), mobile, mobileListLimit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewGrievanceResponses(items),
		"total":   len(items),
	})
}

// List GET /api/grievances.
func (h *GrievancesHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	items, total, err := h.service.List(c.Context(), page, limit, c.Query("status"), c.Query("category"))
	if err != nil {
		return err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewGrievanceResponses(items),
		"pagination": dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// UpdateStatus PUT /api/grievances/:id/status.
func (h *GrievancesHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid grievance id", nil)
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	grievance, err := h.service.UpdateStatus(c.Context(), id, domain.GrievanceStatus(req.Status))
	if err != nil {
		if apperrors.IsCode(err, "NOT_FOUND") {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "No grievance found with id " + c.Params("id"),
			})
		}
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.NewGrievanceResponse(grievance),
		"message": "Status updated successfully",
	})
}
