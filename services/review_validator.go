package services

import "unicode/utf8"

// Bornes des champs d'un avis.
const (
	RatingMin        = 1
	RatingMax        = 5
	CommentMaxLength = 500
)

// ReviewInput est la charge utile d'un avis avant persistance.
type ReviewInput struct {
	MenuItemID uint   `json:"menuItemId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ValidateReviewInput vérifie les contraintes de champs d'un avis.
// Fonction pure: jamais d'accès à la base. Le doublon (user, plat)
// est vérifié par le ReviewService, pas ici.
func ValidateReviewInput(in ReviewInput) error {
	if in.MenuItemID == 0 || in.Rating == 0 || in.Comment == "" {
		return ErrMissingFields
	}

	var issues []FieldIssue
	if in.Rating < RatingMin {
		issues = append(issues, FieldIssue{Path: "rating", Message: "Rating doit être au minimum 1"})
	}
	if in.Rating > RatingMax {
		issues = append(issues, FieldIssue{Path: "rating", Message: "Rating doit être au maximum 5"})
	}
	if utf8.RuneCountInString(in.Comment) > CommentMaxLength {
		issues = append(issues, FieldIssue{Path: "comment", Message: "Le commentaire doit contenir entre 1 et 500 caractères"})
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
