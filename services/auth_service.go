package services

import (
	"errors"
	"strings"

	"github.com/sumtl/restaurant-reviews-app/entity"
	"github.com/sumtl/restaurant-reviews-app/repository"

	"gorm.io/gorm"
)

// AuthService résout l'identité: email → User, créé au premier contact.
// Flux sans mot de passe: l'email est la seule preuve d'identité.
type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(repo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: repo}
}

// NormalizeEmail: trim + minuscule, appliqué partout où un email entre.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login retrouve l'utilisateur par email, ou le crée sans nom s'il
// n'existe pas encore. Retourne isNew=true à la première connexion.
func (s *AuthService) Login(email string) (*entity.User, bool, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, false, ErrInvalidIdentity
	}

	user, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	// Premier contact: nom null, défini plus tard via le profil
	user = &entity.User{Email: email}
	if err := s.userRepo.Create(user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
