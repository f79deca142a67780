package services

import (
	"errors"

	"github.com/sumtl/restaurant-reviews-app/entity"
	"github.com/sumtl/restaurant-reviews-app/repository"

	"gorm.io/gorm"
)

// ReviewService orchestre le cycle de vie d'un avis: validation,
// contrôle d'auteur, unicité (user, plat), puis persistance.
type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	userRepo   *repository.UserRepository
	menuRepo   *repository.MenuItemRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, userRepo *repository.UserRepository, menuRepo *repository.MenuItemRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, userRepo: userRepo, menuRepo: menuRepo}
}

// Create ajoute un avis pour l'utilisateur identifié par son email.
// Refuse le second avis d'un même utilisateur sur un même plat: le
// pré-check donne un message propre, l'index unique ferme la course.
func (s *ReviewService) Create(userEmail string, in ReviewInput) (*entity.Review, error) {
	userEmail = NormalizeEmail(userEmail)
	if userEmail == "" {
		return nil, ErrInvalidIdentity
	}
	user, err := s.userRepo.FindByEmail(userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := ValidateReviewInput(in); err != nil {
		return nil, err
	}

	exists, err := s.reviewRepo.ExistsForUserAndMenuItem(user.ID, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &entity.Review{
		Rating:     in.Rating,
		Comment:    in.Comment,
		UserID:     user.ID,
		MenuItemID: in.MenuItemID,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	// relit avec auteur + plat attachés pour la réponse
	return s.reviewRepo.FindByID(review.ID)
}

func (s *ReviewService) GetByID(id uint) (*entity.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

// Update remplace rating/comment/plat; réservé à l'auteur.
// Si le plat cible change, l'unicité est re-vérifiée contre la
// nouvelle cible.
func (s *ReviewService) Update(userEmail string, id uint, in ReviewInput) (*entity.Review, error) {
	if err := ValidateReviewInput(in); err != nil {
		return nil, err
	}

	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.User.Email != NormalizeEmail(userEmail) {
		return nil, ErrNotOwner
	}

	if in.MenuItemID != review.MenuItemID {
		exists, err := s.reviewRepo.ExistsForUserAndMenuItem(review.UserID, in.MenuItemID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateReview
		}
	}

	review.Rating = in.Rating
	review.Comment = in.Comment
	review.MenuItemID = in.MenuItemID
	if err := s.reviewRepo.Update(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}
	return s.reviewRepo.FindByID(id)
}

// Delete supprime définitivement l'avis; réservé à l'auteur.
func (s *ReviewService) Delete(userEmail string, id uint) error {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.User.Email != NormalizeEmail(userEmail) {
		return ErrNotOwner
	}
	return s.reviewRepo.Delete(id)
}

func (s *ReviewService) ListAll() ([]entity.Review, error) {
	return s.reviewRepo.FindAll()
}

// ListByMenuItem exige que le plat existe (404 sinon).
func (s *ReviewService) ListByMenuItem(menuItemID uint) ([]entity.Review, error) {
	if _, err := s.menuRepo.FindByID(menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return s.reviewRepo.FindByMenuItem(menuItemID)
}

// ListByUser retourne les avis de l'utilisateur identifié par email.
// Un email inconnu donne une liste vide, pas une erreur.
func (s *ReviewService) ListByUser(userEmail string) ([]entity.Review, error) {
	userEmail = NormalizeEmail(userEmail)
	if userEmail == "" {
		return nil, ErrInvalidIdentity
	}
	user, err := s.userRepo.FindByEmail(userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entity.Review{}, nil
		}
		return nil, err
	}
	return s.reviewRepo.FindByUser(user.ID)
}
