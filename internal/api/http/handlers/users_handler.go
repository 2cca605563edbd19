package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/dto"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/service"
	"github.com/spec-kit/account-service/internal/validation"
	apperrors "github.com/spec-kit/account-service/pkg/util/errorutil"
)

// UsersHandler exposes account CRUD endpoints. All errors are returned
// unwrapped into the error funnel middleware.
type UsersHandler struct {
	accounts *service.AccountService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService) *UsersHandler {
	return &UsersHandler{accounts: accounts}
}

// ListUsers GET /users.
func (h *UsersHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userResponse(&users[i]))
	}
	return c.JSON(items)
}

// GetUser GET /users/:id.
func (h *UsersHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.accounts.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(userResponse(user))
}

// CreateUser POST /users.
func (h *UsersHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(&req); err != nil {
		return err
	}

	user, err := h.accounts.CreateUser(c.Context(), req.Name, req.Email, req.Password, req.PasswordConfirm)
	if err != nil {
		return err
	}
	return c.JSON(dto.CreatedUserResponse{Name: user.Name, Email: user.Email})
}

// UpdateUser PUT/PATCH /users/:id.
func (h *UsersHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(&req); err != nil {
		return err
	}

	id := c.Params("id")
	if err := h.accounts.UpdateUser(c.Context(), id, req.Name, req.Email); err != nil {
		return err
	}
	return c.JSON(dto.UserIDResponse{ID: id})
}

// DeleteUser DELETE /users/:id.
func (h *UsersHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.accounts.DeleteUser(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.UserIDResponse{ID: id})
}

// ChangePassword POST/PATCH /users/:id/change-password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Check(&req); err != nil {
		return err
	}

	id := c.Params("id")
	if err := h.accounts.ChangeUserPassword(c.Context(), id, req.OldPassword, req.NewPassword, req.PasswordConfirm); err != nil {
		return err
	}
	return c.JSON(dto.UserIDResponse{ID: id})
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
