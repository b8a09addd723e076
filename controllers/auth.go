package controllers

import (
	"errors"
	"net/http"

	"aurora-backend/auth"
	"aurora-backend/middleware"
	"aurora-backend/models"
	"aurora-backend/repositories"
	"aurora-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthController bridges the external identity provider into local
// sessions. Exchange trades a provider access token for a session
// token; Login is the bootstrap path for environments without the
// provider configured.
type AuthController struct {
	Users    repositories.UserRepository
	Provider auth.IdentityProvider
	Issuer   *auth.Issuer
	Log      *zap.Logger

	// Bootstrap admin credentials. Login is disabled when either is
	// empty.
	BootstrapEmail        string
	BootstrapPasswordHash string
}

func NewAuthController(
	users repositories.UserRepository,
	provider auth.IdentityProvider,
	issuer *auth.Issuer,
	log *zap.Logger,
	bootstrapEmail, bootstrapPasswordHash string,
) *AuthController {
	return &AuthController{
		Users:                 users,
		Provider:              provider,
		Issuer:                issuer,
		Log:                   log,
		BootstrapEmail:        bootstrapEmail,
		BootstrapPasswordHash: bootstrapPasswordHash,
	}
}

type ExchangeInput struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token string     `json:"token"`
	User  MeResponse `json:"user"`
}

type MeResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Image string      `json:"image,omitempty"`
	Role  models.Role `json:"role"`
}

func toMeResponse(u *models.User) MeResponse {
	return MeResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
		Role:  u.Role,
	}
}

// Exchange verifies a provider access token against the userinfo
// endpoint, upserts the matching account by email, and issues a
// session token. First-time visitors are created with the USER role.
func (ac *AuthController) Exchange(c *gin.Context) {
	var input ExchangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	identity, err := ac.Provider.Userinfo(c.Request.Context(), input.AccessToken)
	if err != nil {
		if errors.Is(err, auth.ErrIdentityRejected) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid access token")
		} else {
			ac.Log.Error("identity lookup", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Identity provider unavailable")
		}
		return
	}

	user, err := ac.upsertByEmail(c, identity.Email, identity.Name, identity.Picture, models.RoleUser)
	if err != nil {
		return
	}
	if !user.Enabled || user.Deleted {
		utils.RespondWithError(c, http.StatusForbidden, "Account is disabled")
		return
	}

	ac.issueSession(c, user)
}

// Login authenticates the bootstrap admin against the configured
// bcrypt hash. It exists so a fresh deployment can be administered
// before the identity provider is wired up.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if ac.BootstrapEmail == "" || ac.BootstrapPasswordHash == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if input.Email != ac.BootstrapEmail {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ac.BootstrapPasswordHash), []byte(input.Password)); err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	user, err := ac.upsertByEmail(c, input.Email, "Administrator", "", models.RoleAdmin)
	if err != nil {
		return
	}
	if !user.Enabled || user.Deleted {
		utils.RespondWithError(c, http.StatusForbidden, "Account is disabled")
		return
	}

	ac.issueSession(c, user)
}

// Me returns the authenticated account's profile.
func (ac *AuthController) Me(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := ac.Users.FindByID(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Account no longer exists")
		} else {
			ac.Log.Error("load profile", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, toMeResponse(user))
}

func (ac *AuthController) upsertByEmail(c *gin.Context, email, name, image string, defaultRole models.Role) (*models.User, error) {
	user, err := ac.Users.FindByEmail(c.Request.Context(), email)
	if errors.Is(err, repositories.ErrNotFound) {
		user = &models.User{
			Name:    name,
			Email:   email,
			Image:   image,
			Role:    defaultRole,
			Enabled: true,
		}
		if err := ac.Users.Create(c.Request.Context(), user); err != nil {
			ac.Log.Error("create account", zap.Error(err))
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
			return nil, err
		}
		return user, nil
	}
	if err != nil {
		ac.Log.Error("find account", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return nil, err
	}
	return user, nil
}

func (ac *AuthController) issueSession(c *gin.Context, user *models.User) {
	token, err := ac.Issuer.Issue(user)
	if err != nil {
		ac.Log.Error("issue session token", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	maxAge := int(ac.Issuer.TTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("session", token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User:  toMeResponse(user),
	})
}
