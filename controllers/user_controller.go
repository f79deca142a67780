package controllers

import (
	"errors"
	"fmt"

	"github.com/sumtl/restaurant-reviews-app/pkg/resp"
	"github.com/sumtl/restaurant-reviews-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateProfileRequest struct {
	Name *string `json:"name"`
}

type UserController struct {
	Users *services.UserService
	Log   *zap.Logger
}

func NewUserController(users *services.UserService, log *zap.Logger) *UserController {
	return &UserController{Users: users, Log: log}
}

// GET /api/users
func (u *UserController) List(c *gin.Context) {
	users, err := u.Users.ListUsers()
	if err != nil {
		u.Log.Error("list users failed", zap.Error(err))
		resp.ServerError(c, "Erreur lors de la récupération des utilisateurs")
		return
	}
	resp.OK(c, users, fmt.Sprintf("%d utilisateur(s) trouvé(s)", len(users)))
}

// GET /api/users/profile (?email= ou header X-User-Email)
func (u *UserController) GetProfile(c *gin.Context) {
	email := services.NormalizeEmail(c.Query("email"))
	if email == "" {
		email = callerEmail(c)
	}
	if email == "" {
		resp.BadRequest(c, "Email est obligatoire")
		return
	}

	profile, err := u.Users.GetProfile(email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			resp.NotFound(c, "Utilisateur non trouvé")
			return
		}
		u.Log.Error("get profile failed", zap.String("email", email), zap.Error(err))
		resp.ServerError(c, "Erreur lors de la récupération du profil")
		return
	}

	resp.OK(c, gin.H{
		"id":           profile.User.ID,
		"email":        profile.User.Email,
		"name":         profile.User.Name,
		"createdAt":    profile.User.CreatedAt,
		"updatedAt":    profile.User.UpdatedAt,
		"reviewsCount": profile.ReviewsCount,
	}, "Profil utilisateur récupéré avec succès")
}

// PUT /api/users/profile (identité par header)
func (u *UserController) UpdateProfile(c *gin.Context) {
	email := callerEmail(c)
	if email == "" {
		resp.Unauthorized(c, "Le header X-User-Email est obligatoire")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Le nom doit être une chaîne de caractères")
		return
	}

	user, err := u.Users.UpdateProfile(email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidName):
			resp.BadRequest(c, "Le nom ne peut pas dépasser 50 caractères")
		case errors.Is(err, services.ErrUserNotFound):
			resp.NotFound(c, "Utilisateur non trouvé")
		default:
			u.Log.Error("update profile failed", zap.String("email", email), zap.Error(err))
			resp.ServerError(c, "Erreur lors de la mise à jour du profil")
		}
		return
	}

	resp.OK(c, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"updatedAt": user.UpdatedAt,
	}, "Profil mis à jour avec succès")
}
