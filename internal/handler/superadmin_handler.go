package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/middleware"
	"civic-redressal/internal/service/adminmgmt"
	"civic-redressal/internal/service/notification"
	"civic-redressal/internal/service/workload"
)

type SuperAdminHandler struct {
	adminService        adminmgmt.Service
	workloadService     workload.Service
	notificationService notification.Service
}

func NewSuperAdminHandler(adminService adminmgmt.Service, workloadService workload.Service, notificationService notification.Service) *SuperAdminHandler {
	return &SuperAdminHandler{
		adminService:        adminService,
		workloadService:     workloadService,
		notificationService: notificationService,
	}
}

func (h *SuperAdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var input domain.CreateAdminInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Username == "" || input.Password == "" {
		return middleware.BadRequest("Username and password are required")
	}

	created, err := h.adminService.CreateAdmin(c.Context(), input)
	if err != nil {
		if errors.Is(err, adminmgmt.ErrUsernameTaken) {
			return middleware.Conflict("Username already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *SuperAdminHandler) ListAdmins(c *fiber.Ctx) error {
	admins, err := h.adminService.ListAdmins(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(admins)
}

func (h *SuperAdminHandler) UpdateAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid admin ID")
	}

	var input domain.UpdateAdminInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Username == "" {
		return middleware.BadRequest("Username is required")
	}

	updated, err := h.adminService.UpdateAdmin(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, adminmgmt.ErrAdminNotFound) {
			return middleware.NotFound("Admin not found")
		}
		if errors.Is(err, adminmgmt.ErrUsernameTaken) {
			return middleware.Conflict("Username already exists")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *SuperAdminHandler) DeleteAdmin(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid admin ID")
	}

	if err := h.adminService.DeleteAdmin(c.Context(), id); err != nil {
		if errors.Is(err, adminmgmt.ErrAdminNotFound) {
			return middleware.NotFound("Admin not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Admin deleted successfully",
	})
}

// WorkStatuses reports per-admin complaint counts for the oversight
// dashboard.
func (h *SuperAdminHandler) WorkStatuses(c *fiber.Ctx) error {
	statuses, err := h.workloadService.Statuses(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(statuses)
}

func (h *SuperAdminHandler) SendRemark(c *fiber.Ctx) error {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		return middleware.Unauthorized("Admin not found")
	}

	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid admin ID")
	}

	var input domain.SendRemarkInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	sent, err := h.notificationService.SendRemark(c.Context(), admin, targetID, input.Message)
	if err != nil {
		if errors.Is(err, notification.ErrEmptyMessage) {
			return middleware.BadRequest("Remark message cannot be empty")
		}
		if errors.Is(err, notification.ErrAdminNotFound) {
			return middleware.NotFound("Admin not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(sent)
}

func (h *SuperAdminHandler) ListDepartments(c *fiber.Ctx) error {
	departments, err := h.adminService.ListDepartments(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(departments)
}

func (h *SuperAdminHandler) ListMunicipalities(c *fiber.Ctx) error {
	municipalities, err := h.adminService.ListMunicipalities(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(municipalities)
}
