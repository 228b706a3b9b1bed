package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/lendboard/internal/domain"
)

type AuthHandler struct {
	authService AuthServicer
}

func NewAuthHandler(authService AuthServicer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type SignInParams struct {
	Name     string `binding:"required,min=1,max=255" json:"name"`
	Password string `binding:"required,min=6,max=255" json:"password"`
}

// SignIn POST RouteGroup + SignInRoute. Аутентификация по паре имя/пароль.
// Пара проверяется ядром кредитования; дашборд лишь выдает сессионный токен.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var params SignInParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, token, err := h.authService.SignIn(ctx, params.Name, params.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		case errors.Is(err, domain.ErrAccessDenied):
			_ = c.AbortWithError(http.StatusForbidden, errors.New("admin role required")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusBadGateway, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  newUserResponse(*user),
	})
}
