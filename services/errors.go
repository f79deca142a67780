package services

import "errors"

// Erreurs métier. Les controllers les traduisent en codes HTTP.
var (
	ErrInvalidIdentity  = errors.New("email utilisateur requis")
	ErrUserNotFound     = errors.New("utilisateur non trouvé")
	ErrMenuItemNotFound = errors.New("menu item non trouvé")
	ErrReviewNotFound   = errors.New("avis non trouvé")
	ErrDuplicateReview  = errors.New("avis déjà existant pour ce plat")
	ErrNotOwner         = errors.New("pas l'auteur de l'avis")
	ErrMissingFields    = errors.New("données manquantes")
	ErrInvalidName      = errors.New("nom invalide")
)

// FieldIssue décrit un problème de validation sur un champ précis.
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError porte la liste des champs refusés, dans l'ordre
// où ils ont été vérifiés.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "données invalides"
	}
	return "données invalides - " + e.Issues[0].Message
}
