package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fieldtrack/fieldtrack-api/internal/dto"
	apierrors "github.com/fieldtrack/fieldtrack-api/internal/errors"
	"github.com/fieldtrack/fieldtrack-api/internal/middleware"
	"github.com/fieldtrack/fieldtrack-api/internal/models"
	"github.com/fieldtrack/fieldtrack-api/internal/repository"
	"github.com/fieldtrack/fieldtrack-api/internal/services"
	"github.com/fieldtrack/fieldtrack-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// UserHandler coordinates account management HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUserRequest is shared by single and bulk creation.
type CreateUserRequest struct {
	Username        string  `json:"username"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required"`
	ConfirmPassword string  `json:"confirm_password"`
	FullName        string  `json:"full_name"`
	Phone           *string `json:"phone"`
	Role            string  `json:"role"`
	IsActive        *bool   `json:"is_active"`
}

// UpdateUserRequest is shared by single and bulk updates. Absent fields keep
// their stored value.
type UpdateUserRequest struct {
	ID              *uint64 `json:"id"`
	Username        *string `json:"username"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirm_password"`
	FullName        *string `json:"full_name"`
	Phone           *string `json:"phone"`
	Role            *string `json:"role"`
	IsActive        *bool   `json:"is_active"`
}

// ListUsers returns users with optional role, activity and search filters.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.UserFilter{
		Search:   c.Query("search"),
		Page:     params.Page,
		PageSize: params.Limit,
	}

	if roleStr := c.Query("role"); roleStr != "" {
		role := models.UserRole(roleStr)
		if !role.Valid() {
			apierrors.BadRequest(c, "Invalid role filter")
			return
		}
		filter.Role = &role
	}
	if activeStr := c.Query("is_active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			apierrors.BadRequest(c, "is_active must be true or false")
			return
		}
		filter.IsActive = &active
	}

	users, total, err := h.userService.ListUsers(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params.Page, params.Limit, total))
}

// GetUser returns a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// CreateUser registers a single account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(toCreateInput(req), isAdmin(c))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// UpdateUser applies a partial update to one account. Non-admins may only
// touch their own.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actorID, _ := middleware.GetUserID(c)
	if actorID != id && !isAdmin(c) {
		apierrors.Forbidden(c, "You can only update your own account")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(id, toUpdateInput(req), isAdmin(c))
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser removes one account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	actorID, _ := middleware.GetUserID(c)
	if actorID == id {
		apierrors.Forbidden(c, services.ErrSelfDelete.Error())
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

// BulkCreateUsers creates every item or none. Validation failures reject the
// whole batch with per-item details.
func (h *UserHandler) BulkCreateUsers(c *gin.Context) {
	var reqs []CreateUserRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		apierrors.BadRequest(c, "Request body must be an array of users")
		return
	}
	if len(reqs) == 0 {
		apierrors.BadRequest(c, "At least one user is required")
		return
	}

	items := make([]services.CreateUserInput, len(reqs))
	for i, req := range reqs {
		items[i] = toCreateInput(req)
	}

	created, err := h.userService.BulkCreate(items, isAdmin(c))
	if err != nil {
		var bulkErr *services.BulkValidationError
		if errors.As(err, &bulkErr) {
			apierrors.BadRequestWithDetails(c, "No users were created", bulkErr.Items)
			return
		}
		apierrors.InternalError(c, "Failed to create users")
		return
	}

	users := make([]dto.UserDTO, len(created))
	for i, u := range created {
		users[i] = dto.ToUserDTO(u)
	}
	c.JSON(http.StatusCreated, gin.H{"users": users})
}

// BulkUpdateUsers applies each item independently. A fully successful batch
// returns 200; any per-item failure turns the response into a 207 carrying
// both the updated records and the errors.
func (h *UserHandler) BulkUpdateUsers(c *gin.Context) {
	var reqs []UpdateUserRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		apierrors.BadRequest(c, "Request body must be an array of updates")
		return
	}
	if len(reqs) == 0 {
		apierrors.BadRequest(c, "At least one update is required")
		return
	}

	items := make([]services.UpdateUserInput, len(reqs))
	for i, req := range reqs {
		items[i] = toUpdateInput(req)
		items[i].ID = req.ID
	}

	updated, itemErrors := h.userService.BulkUpdate(items, isAdmin(c))

	users := make([]dto.UserDTO, len(updated))
	for i, u := range updated {
		users[i] = dto.ToUserDTO(u)
	}

	status := http.StatusOK
	if len(itemErrors) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{
		"updated": users,
		"errors":  itemErrors,
	})
}

// BulkDeleteUsers removes the listed accounts. Including the caller's own id
// rejects the whole request.
func (h *UserHandler) BulkDeleteUsers(c *gin.Context) {
	type BulkDeleteRequest struct {
		IDs []uint64 `json:"ids" binding:"required"`
	}

	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		apierrors.BadRequest(c, "At least one user ID is required")
		return
	}

	actorID, _ := middleware.GetUserID(c)
	deleted, err := h.userService.BulkDelete(actorID, req.IDs)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted_count": deleted,
	})
}

func toCreateInput(req CreateUserRequest) services.CreateUserInput {
	return services.CreateUserInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
		Phone:           req.Phone,
		Role:            models.UserRole(req.Role),
		IsActive:        req.IsActive,
	}
}

func toUpdateInput(req UpdateUserRequest) services.UpdateUserInput {
	input := services.UpdateUserInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
		Phone:           req.Phone,
		IsActive:        req.IsActive,
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		input.Role = &role
	}
	return input
}

// isAdmin reports whether the authenticated caller has the admin role.
func isAdmin(c *gin.Context) bool {
	user, exists := middleware.GetCurrentUser(c)
	return exists && user.Role == models.RoleAdmin
}

// parseIDParam reads the :id path segment; on failure it writes the 400.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrEmailRequired),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrSelfDelete):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
