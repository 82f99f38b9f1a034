package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"civic-redressal/internal/domain"
	"civic-redressal/internal/middleware"
	"civic-redressal/internal/service/access"
	"civic-redressal/internal/service/complaint"
)

type ComplaintHandler struct {
	complaintService complaint.Service
	accessService    access.Service
}

func NewComplaintHandler(complaintService complaint.Service, accessService access.Service) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		accessService:    accessService,
	}
}

// Create accepts a multipart form so the photo evidence can ride
// along with the complaint fields.
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	input := domain.CreateComplaintInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
	}

	lat, err := strconv.ParseFloat(c.FormValue("latitude"), 64)
	if err != nil {
		return middleware.BadRequest("Invalid or missing latitude")
	}
	lon, err := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if err != nil {
		return middleware.BadRequest("Invalid or missing longitude")
	}
	input.Latitude = &lat
	input.Longitude = &lon

	if address := c.FormValue("address"); address != "" {
		input.Address = &address
	}

	var image *complaint.UploadedImage
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return middleware.BadRequest("Unable to read uploaded image")
		}
		defer file.Close()

		image = &complaint.UploadedImage{
			FileName:    fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Reader:      file,
		}
	}

	created, err := h.complaintService.Create(c.Context(), input, image, user)
	if err != nil {
		if errors.Is(err, complaint.ErrMissingFields) || errors.Is(err, complaint.ErrInvalidCategory) {
			return middleware.BadRequest(err.Error())
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ComplaintHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	complaints, err := h.complaintService.ListForUser(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(complaints)
}

// Get serves both citizens and admins; admin callers get the owner's
// contact fields redacted unless they are the super admin.
func (h *ComplaintHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid complaint ID")
	}

	found, err := h.complaintService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, complaint.ErrComplaintNotFound) {
			return middleware.NotFound("Complaint not found")
		}
		return err
	}

	if admin := middleware.GetCurrentAdmin(c); admin != nil && h.accessService.ShouldRedactCitizen(admin) {
		h.accessService.RedactOwner(found)
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ComplaintHandler) Delete(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid complaint ID")
	}

	if err := h.complaintService.Delete(c.Context(), id, user); err != nil {
		if errors.Is(err, complaint.ErrComplaintNotFound) {
			return middleware.NotFound("Complaint not found")
		}
		if errors.Is(err, complaint.ErrNotOwner) {
			return middleware.Forbidden("You do not own this complaint")
		}
		if errors.Is(err, complaint.ErrDeleteWindowExpired) {
			return middleware.BadRequest("Deletion time expired: complaints can only be deleted within 7 minutes of creation")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Complaint deleted successfully",
	})
}

func (h *ComplaintHandler) ListForAdmin(c *fiber.Ctx) error {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		return middleware.Unauthorized("Admin not found")
	}

	complaints, err := h.complaintService.ListForAdmin(c.Context(), admin)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(complaints)
}

func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		return middleware.Unauthorized("Admin not found")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid complaint ID")
	}

	var input domain.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.complaintService.UpdateStatus(c.Context(), id, input, admin)
	if err != nil {
		if errors.Is(err, complaint.ErrInvalidStatus) || errors.Is(err, complaint.ErrEmptyRemarks) {
			return middleware.BadRequest(err.Error())
		}
		if errors.Is(err, complaint.ErrComplaintNotFound) {
			return middleware.NotFound("Complaint not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ComplaintHandler) History(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid complaint ID")
	}

	entries, err := h.complaintService.History(c.Context(), id)
	if err != nil {
		if errors.Is(err, complaint.ErrComplaintNotFound) {
			return middleware.NotFound("Complaint not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

// ComplainantDetails exposes the unmasked citizen record and is
// reachable only by the super admin.
func (h *ComplaintHandler) ComplainantDetails(c *fiber.Ctx) error {
	admin := middleware.GetCurrentAdmin(c)
	if admin == nil {
		return middleware.Unauthorized("Admin not found")
	}

	if err := h.accessService.AssertSuperAdmin(admin); err != nil {
		return middleware.Forbidden("Access denied: restricted to super admin")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid complaint ID")
	}

	found, err := h.complaintService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, complaint.ErrComplaintNotFound) {
			return middleware.NotFound("Complaint not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id":   found.UserID,
		"username":  found.OwnerUsername,
		"full_name": found.OwnerFullName,
		"mobile":    found.OwnerMobile,
		"email":     found.OwnerEmail,
	})
}
