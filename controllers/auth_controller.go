package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Marmblshko/Simple-blog/models"
	"github.com/Marmblshko/Simple-blog/store"
	"github.com/Marmblshko/Simple-blog/utils"
)

const tokenLifetime = 72 * time.Hour

// AuthController handles registration, login, and account lifecycle.
type AuthController struct {
	store store.Store
}

// NewAuthController creates an AuthController.
func NewAuthController(s store.Store) *AuthController {
	return &AuthController{store: s}
}

// Register creates a new account and returns a signed token.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	user := models.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
	}

	errs := models.ValidationErrors{}
	if verr := user.Validate(); verr != nil {
		errs = verr.(models.ValidationErrors)
	}
	if len(req.Password) < 6 {
		errs.Add("password", "is too short (minimum is 6 characters)")
	}
	if !errs.Has("username") {
		if _, err := a.store.UserByUsername(ctx, user.Username); err == nil {
			errs.Add("username", "has already been taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusInternalServerError, 50001, "failed to check username")
			return
		}
	}
	if !errs.Has("email") {
		if _, err := a.store.UserByEmail(ctx, user.Email); err == nil {
			errs.Add("email", "has already been taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusInternalServerError, 50002, "failed to check email")
			return
		}
	}
	if len(errs) > 0 {
		utils.Invalid(ctx, errs)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to hash password")
		return
	}
	user.PasswordHash = hash

	if err := a.store.CreateUser(ctx, &user); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to create user")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenLifetime)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50005, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{"token": token, "user": user})
}

// Login authenticates by username and password.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40002, "invalid request payload")
		return
	}

	user, err := a.store.UserByUsername(ctx, req.Username)
	if err != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, 40106, "invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, tokenLifetime)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50006, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{"token": token, "user": user})
}

// Logout invalidates the token by blacklisting it until expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.Error(ctx, http.StatusUnauthorized, 40107, "invalid authorization header")
		return
	}

	token := strings.TrimSpace(parts[1])
	claims, err := utils.ParseToken(token)
	if err != nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	expiresAt := time.Now().Add(tokenLifetime)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	utils.BlacklistToken(token, expiresAt)
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated user's account.
func (a *AuthController) Me(ctx *gin.Context) {
	actor := actorFrom(ctx)
	if actor == nil {
		utils.SignInRequired(ctx, 40108, "unauthorized")
		return
	}

	user, err := a.store.UserByID(ctx, actor.ID)
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		return
	}

	utils.Success(ctx, user)
}

// DeleteAccount removes the account together with its posts and likes.
// Comments authored under the username stay behind as snapshots.
func (a *AuthController) DeleteAccount(ctx *gin.Context) {
	actor := actorFrom(ctx)
	if actor == nil {
		utils.SignInRequired(ctx, 40108, "unauthorized")
		return
	}

	user, err := a.store.UserByID(ctx, actor.ID)
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		return
	}

	if err := a.store.DeleteUser(ctx, user); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50007, "failed to delete account")
		return
	}

	if h := ctx.GetHeader("Authorization"); h != "" {
		if parts := strings.SplitN(h, " ", 2); len(parts) == 2 {
			utils.BlacklistToken(strings.TrimSpace(parts[1]), time.Now().Add(tokenLifetime))
		}
	}

	utils.InvalidateByPrefix("cache:posts:")
	utils.InvalidateByPrefix("cache:post:detail:")
	utils.Redirect(ctx, postsPath, "Account deleted!", nil)
}
