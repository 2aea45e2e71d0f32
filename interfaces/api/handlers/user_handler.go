package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/domain/dto"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", validationErrors)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	logger.InfoContext(ctx, "Registration attempt", "username", req.Username)

	_, err := h.userService.Register(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return utils.ConflictResponse(c, "Username already exists")
		}
		logger.ErrorContext(ctx, "Registration failed", "username", req.Username, "error", err)
		return utils.ServerErrorResponse(c, "Server error during registration")
	}

	return utils.MessageResponse(c, "User has been registered")
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		validationErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", validationErrors)
		return utils.ValidationErrorResponse(c, validationErrors)
	}

	logger.InfoContext(ctx, "Login attempt", "username", req.Username)

	token, _, err := h.userService.Login(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// unknown username กับ password ผิด ตอบเหมือนกันเสมอ
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.ErrorContext(ctx, "Login failed", "username", req.Username, "error", err)
		return utils.ServerErrorResponse(c, "Login error")
	}

	return utils.SuccessResponse(c, dto.LoginResponse{Token: token})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(ctx, "Unauthorized access attempt")
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(ctx, user.ID)
	if err != nil {
		logger.WarnContext(ctx, "Profile not found", "user_id", user.ID)
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}
