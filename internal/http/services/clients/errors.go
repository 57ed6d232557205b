package clients

import "errors"

// Kind clasifica los errores del service.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInactive
	KindConflict
	KindValidation
	// KindStore es un fallo inesperado del store (no es error de negocio).
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInactive:
		return "inactive"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindStore:
		return "store_error"
	}
	return "unknown"
}

// Error es el error retornado por ClientService. Message es el texto que se
// devuelve al cliente HTTP.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// KindOf retorna el Kind de err, o 0 si no es un *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsBusiness indica si err es un error de negocio (no encontrado, inactivo,
// duplicado o validación).
func IsBusiness(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindInactive, KindConflict, KindValidation:
		return true
	}
	return false
}

// Mensajes devueltos al cliente y registrados en los logs de auditoría.
const (
	MsgNotFound          = "Client non trouvé"
	MsgInactive          = "Client inactif"
	MsgFound             = "Client trouvé"
	MsgListed            = "%d clients récupérés"
	MsgListFailed        = "Erreur lors de la récupération des clients: %s"
	MsgGetFailed         = "Erreur lors de la récupération du client: %s"
	MsgDuplicateLog      = "Numéro de client déjà existant"
	MsgDuplicate         = "Un client avec ce numéro existe déjà"
	MsgCreated           = "Client créé avec succès"
	MsgCreateFailed      = "Erreur lors de la création du client: %s"
	MsgUpdateNotFoundLog = "Client non trouvé pour mise à jour"
	MsgUpdated           = "Client mis à jour avec succès"
	MsgUpdateFailed      = "Erreur lors de la mise à jour du client: %s"
	MsgDeleteNotFoundLog = "Client non trouvé pour suppression"
	MsgDeleted           = "Client supprimé avec succès"
	MsgDeleteFailed      = "Erreur lors de la suppression du client: %s"

	MsgMissingFields = "Les champs numero, statut et nom sont obligatoires"
	MsgInvalidStatut = "Le statut doit être 'actif' ou 'inactif'"
	MsgEmptyNom      = "Le nom ne peut pas être vide"
)
