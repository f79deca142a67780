package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sumtl/restaurant-reviews-app/pkg/resp"
	"github.com/sumtl/restaurant-reviews-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReviewController struct {
	Reviews *services.ReviewService
	Log     *zap.Logger
}

func NewReviewController(reviews *services.ReviewService, log *zap.Logger) *ReviewController {
	return &ReviewController{Reviews: reviews, Log: log}
}

// ===== Handlers =====

// GET /api/reviews
func (rc *ReviewController) List(c *gin.Context) {
	reviews, err := rc.Reviews.ListAll()
	if err != nil {
		rc.Log.Error("list reviews failed", zap.Error(err))
		resp.ServerError(c, "Erreur lors de la récupération des avis")
		return
	}
	resp.OK(c, toReviewDTOs(reviews, true, false), fmt.Sprintf("%d avis trouvé(s)", len(reviews)))
}

// POST /api/reviews
// L'identité arrive par X-User-Email; le corps porte {menuItemId, rating, comment}.
func (rc *ReviewController) Create(c *gin.Context) {
	email := callerEmail(c)
	if email == "" {
		resp.BadRequest(c, "Email utilisateur requis")
		return
	}

	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Données manquantes")
		return
	}

	review, err := rc.Reviews.Create(email, in)
	if err != nil {
		rc.writeCreateError(c, err)
		return
	}
	resp.Created(c, toReviewDTO(*review, false, false), "Avis créé avec succès")
}

func (rc *ReviewController) writeCreateError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		resp.BadRequest(c, "Utilisateur non trouvé")
	case errors.Is(err, services.ErrMissingFields):
		resp.BadRequest(c, "Données manquantes")
	case errors.As(err, &vErr):
		resp.BadRequestDetails(c, "Données invalides - Rating doit être entre 1 et 5", vErr.Issues)
	case errors.Is(err, services.ErrDuplicateReview):
		resp.BadRequest(c, "Vous avez déjà laissé un avis pour ce plat. Veuillez modifier votre avis existant.")
	default:
		rc.Log.Error("create review failed", zap.Error(err))
		resp.ServerError(c, "Erreur lors de la création de l'avis")
	}
}

// GET /api/reviews/:id
func (rc *ReviewController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Avis non trouvé")
		return
	}

	review, err := rc.Reviews.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			resp.NotFound(c, "Avis non trouvé")
			return
		}
		rc.Log.Error("get review failed", zap.Uint64("id", id), zap.Error(err))
		resp.ServerError(c, "Erreur lors de la récupération de l'avis")
		return
	}
	resp.OK(c, toReviewDTO(*review, true, false), "Avis récupéré avec succès")
}

// PUT /api/reviews/:id (auteur seulement)
func (rc *ReviewController) Update(c *gin.Context) {
	id, parseErr := strconv.ParseUint(c.Param("id"), 10, 32)
	if parseErr != nil {
		resp.NotFound(c, "Avis non trouvé")
		return
	}

	var in services.ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "Tous les champs sont requis")
		return
	}

	review, err := rc.Reviews.Update(callerEmail(c), uint(id), in)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrMissingFields):
			resp.BadRequest(c, "Tous les champs sont requis")
		case errors.As(err, &vErr):
			resp.BadRequestDetails(c, "Données invalides - Rating doit être entre 1 et 5", vErr.Issues)
		case errors.Is(err, services.ErrReviewNotFound):
			resp.NotFound(c, "Avis non trouvé")
		case errors.Is(err, services.ErrNotOwner):
			resp.Forbidden(c, "Vous n'êtes pas autorisé à modifier cet avis")
		case errors.Is(err, services.ErrDuplicateReview):
			resp.BadRequest(c, "Vous avez déjà laissé un avis pour ce plat. Veuillez modifier votre avis existant.")
		default:
			rc.Log.Error("update review failed", zap.Uint64("id", id), zap.Error(err))
			resp.ServerError(c, "Erreur lors de la modification de l'avis")
		}
		return
	}
	resp.OK(c, toReviewDTO(*review, false, false), "Avis modifié avec succès")
}

// DELETE /api/reviews/:id (auteur seulement, irréversible)
func (rc *ReviewController) Delete(c *gin.Context) {
	id, parseErr := strconv.ParseUint(c.Param("id"), 10, 32)
	if parseErr != nil {
		resp.NotFound(c, "Avis non trouvé")
		return
	}

	if err := rc.Reviews.Delete(callerEmail(c), uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			resp.NotFound(c, "Avis non trouvé")
		case errors.Is(err, services.ErrNotOwner):
			resp.Forbidden(c, "Vous n'êtes pas autorisé à supprimer cet avis")
		default:
			rc.Log.Error("delete review failed", zap.Uint64("id", id), zap.Error(err))
			resp.ServerError(c, "Erreur lors de la suppression de l'avis")
		}
		return
	}
	resp.OKMessage(c, "Avis supprimé avec succès")
}

// GET /api/reviews/by-menu/:menuItemId
func (rc *ReviewController) ListByMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("menuItemId"), 10, 32)
	if err != nil {
		resp.NotFound(c, "Menu item non trouvé")
		return
	}

	reviews, err := rc.Reviews.ListByMenuItem(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, "Menu item non trouvé")
			return
		}
		rc.Log.Error("list reviews by menu item failed", zap.Uint64("menuItemId", id), zap.Error(err))
		resp.ServerError(c, "Erreur lors de la récupération des avis")
		return
	}
	resp.OK(c, toReviewDTOs(reviews, false, true), fmt.Sprintf("%d avis trouvés", len(reviews)))
}

// GET /api/reviews/by-user (identité par header)
func (rc *ReviewController) ListByUser(c *gin.Context) {
	email := callerEmail(c)
	if email == "" {
		resp.Unauthorized(c, "Email utilisateur requis")
		return
	}

	reviews, err := rc.Reviews.ListByUser(email)
	if err != nil {
		rc.Log.Error("list reviews by user failed", zap.Error(err))
		resp.ServerError(c, "Erreur lors de la récupération des avis")
		return
	}
	resp.OK(c, toReviewDTOs(reviews, false, false), fmt.Sprintf("%d avis trouvés pour cet utilisateur", len(reviews)))
}
