package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Page copy. English strings double as catalog keys.
const (
	MsgTitle        = "Coming Soon"
	MsgHeadline     = "Something new is on the way"
	MsgTagline      = "Be the first to know when we launch."
	MsgNamePH       = "Your Name"
	MsgEmailPH      = "Your Email"
	MsgPhonePH      = "Your Phone"
	MsgChooseModel  = "Choose Model"
	MsgNotify       = "NOTIFY ME"
	MsgSubmitting   = "SUBMITTING..."
	MsgThanks       = "Thank you! We'll notify you when we launch."
	MsgFillAll      = "Please fill in all fields"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgSubmitFailed = "Failed to submit form. Please try again."
	MsgNetworkError = "Network error. Please check your connection and try again."
	MsgSwitchLang   = "Español"
	MsgTooManyTries = "Too many requests. Please try again later."
)

func init() {
	for key, msg := range map[string]string{
		MsgTitle:        "Próximamente",
		MsgHeadline:     "Algo nuevo está en camino",
		MsgTagline:      "Sé el primero en enterarte cuando lancemos.",
		MsgNamePH:       "Tu nombre",
		MsgEmailPH:      "Tu correo electrónico",
		MsgPhonePH:      "Tu teléfono",
		MsgChooseModel:  "Elige un modelo",
		MsgNotify:       "AVÍSAME",
		MsgSubmitting:   "ENVIANDO...",
		MsgThanks:       "¡Gracias! Te avisaremos cuando lancemos.",
		MsgFillAll:      "Por favor completa todos los campos",
		MsgInvalidEmail: "Por favor introduce un correo electrónico válido",
		MsgSubmitFailed: "No se pudo enviar el formulario. Inténtalo de nuevo.",
		MsgNetworkError: "Error de red. Revisa tu conexión e inténtalo de nuevo.",
		MsgSwitchLang:   "English",
		MsgTooManyTries: "Demasiadas solicitudes. Inténtalo más tarde.",
	} {
		_ = message.SetString(language.Spanish, key, msg)
	}
}
