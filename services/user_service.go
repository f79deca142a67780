package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/sumtl/restaurant-reviews-app/entity"
	"github.com/sumtl/restaurant-reviews-app/repository"

	"gorm.io/gorm"
)

// Borne du nom d'affichage.
const NameMaxLength = 50

// Profile = utilisateur + nombre d'avis dérivé.
type Profile struct {
	User         entity.User
	ReviewsCount int64
}

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

// GetProfile retourne l'utilisateur et son nombre d'avis.
func (s *UserService) GetProfile(email string) (*Profile, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrInvalidIdentity
	}
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	count, err := s.userRepo.CountReviews(user.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{User: *user, ReviewsCount: count}, nil
}

// UpdateProfile change le nom d'affichage (≤50 caractères).
// Un nom vide ou blanc redevient null, affiché "anonyme".
func (s *UserService) UpdateProfile(email string, name *string) (*entity.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrInvalidIdentity
	}
	if name != nil && utf8.RuneCountInString(*name) > NameMaxLength {
		return nil, ErrInvalidName
	}

	if _, err := s.userRepo.FindByEmail(email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var trimmed *string
	if name != nil {
		t := strings.TrimSpace(*name)
		if t != "" {
			trimmed = &t
		}
	}
	return s.userRepo.UpdateName(email, trimmed)
}

// ListUsers: tous les utilisateurs avec leur nombre d'avis.
func (s *UserService) ListUsers() ([]repository.UserWithCount, error) {
	return s.userRepo.ListWithReviewCounts()
}
