package controllers

import (
	"errors"

	"github.com/sumtl/restaurant-reviews-app/pkg/resp"
	"github.com/sumtl/restaurant-reviews-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email string `json:"email"`
}

type AuthController struct {
	Auth *services.AuthService
	Log  *zap.Logger
}

func NewAuthController(auth *services.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{Auth: auth, Log: log}
}

// POST /api/auth/login
// Connecte l'utilisateur par email, le crée s'il n'existe pas encore.
// 201 à la première connexion, 200 ensuite.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		resp.BadRequest(c, "Email est obligatoire")
		return
	}

	user, isNew, err := a.Auth.Login(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidIdentity) {
			resp.BadRequest(c, "Email est obligatoire")
			return
		}
		a.Log.Error("login failed", zap.String("email", req.Email), zap.Error(err))
		resp.ServerError(c, "Erreur lors de la connexion")
		return
	}

	data := gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"isNewUser": isNew,
	}
	if isNew {
		resp.Created(c, data, "Nouvel utilisateur créé et connecté avec succès")
		return
	}
	resp.OK(c, data, "Utilisateur connecté avec succès")
}
