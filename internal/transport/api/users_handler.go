package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/lendboard/internal/core"
	"github.com/fsdevblog/lendboard/internal/domain"
	"github.com/fsdevblog/lendboard/internal/service"
)

type UsersHandler struct {
	userService UserServicer
}

func NewUsersHandler(userService UserServicer) *UsersHandler {
	return &UsersHandler{
		userService: userService,
	}
}

type UsersIndexParams struct {
	ListQueryParams
	Role string `binding:"omitempty,oneof=all MEMBER ADMIN" form:"role"`
}

type UserListResponse struct {
	Items   []UserResponse `json:"items"`
	Summary core.Summary   `json:"summary"`
	Stale   bool           `json:"stale"`
}

// Index GET RouteGroup + UsersRoute.
func (h *UsersHandler) Index(c *gin.Context) {
	var params UsersIndexParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	list, err := h.userService.List(ctx, params.toListQuery(params.Role))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := UserListResponse{
		Items:   make([]UserResponse, len(list.Items)),
		Summary: list.Summary,
		Stale:   list.Stale,
	}
	for i, view := range list.Items {
		response.Items[i] = newUserResponse(view)
	}
	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + UserRoute.
func (h *UsersHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.userService.Find(ctx, c.Param("id"))
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*view))
}

type UserCreateParams struct {
	Name     string `binding:"required,min=1,max=255"      json:"name"`
	Email    string `binding:"required,email"              json:"email"`
	Phone    string `binding:"required,min=6,max=32"       json:"phone"`
	Role     string `binding:"required,oneof=MEMBER ADMIN" json:"role"`
	Password string `binding:"required,min=6,max=255"      json:"password"`
}

// Create POST RouteGroup + UsersRoute.
func (h *UsersHandler) Create(c *gin.Context) {
	var params UserCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.userService.Create(ctx, service.CreateUserArgs{
		Name:     params.Name,
		Email:    params.Email,
		Phone:    params.Phone,
		Role:     domain.RoleType(params.Role),
		Password: params.Password,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(*view))
}

type UserUpdateParams struct {
	Name  string `binding:"required,min=1,max=255"      json:"name"`
	Email string `binding:"required,email"              json:"email"`
	Phone string `binding:"required,min=6,max=32"       json:"phone"`
	Role  string `binding:"required,oneof=MEMBER ADMIN" json:"role"`
}

// Update PUT RouteGroup + UserRoute.
func (h *UsersHandler) Update(c *gin.Context) {
	var params UserUpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.userService.Update(ctx, c.Param("id"), service.UpdateUserArgs{
		Name:  params.Name,
		Email: params.Email,
		Phone: params.Phone,
		Role:  domain.RoleType(params.Role),
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*view))
}

// Delete DELETE RouteGroup + UserRoute.
func (h *UsersHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.userService.Delete(ctx, c.Param("id")); err != nil {
		h.abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func (h *UsersHandler) abortWithServiceError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
}
