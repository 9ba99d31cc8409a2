package notification

import "github.com/dmitrymomot/landing/pkg/status"

// ImageRef names a status illustration. The zero value means "no image":
// presenters show a progress spinner instead.
type ImageRef string

const (
	ImageBadStatus     ImageRef = "bad-status"
	ImageSuccessStatus ImageRef = "success-status"
	ImageErrorStatus   ImageRef = "error-status"
)

// Accent colors with a fixed value.
const (
	AccentSuccess = "#8AC576"
	AccentError   = "#E30000"
)

// Message carries optional caller overrides for the resolved texts.
// Empty fields fall back to the per-status defaults.
type Message struct {
	PrimaryText   string `json:"primaryText,omitempty" form:"primaryText"`
	SecondaryText string `json:"secondaryText,omitempty" form:"secondaryText"`
}

// Merge returns m with every empty field taken from defaults.
func (m Message) Merge(defaults Message) Message {
	if m.PrimaryText == "" {
		m.PrimaryText = defaults.PrimaryText
	}
	if m.SecondaryText == "" {
		m.SecondaryText = defaults.SecondaryText
	}
	return m
}

// Data is the resolved, renderable notification.
// AccentColor may be empty for warning statuses; presenters apply their own fallback.
type Data struct {
	Heading       string   `json:"heading"`
	PrimaryText   string   `json:"primaryText"`
	SecondaryText string   `json:"secondaryText"`
	AccentColor   string   `json:"accentColor,omitempty"`
	Image         ImageRef `json:"image,omitempty"`
}

// HasImage reports whether an illustration should be shown instead of a spinner.
func (d Data) HasImage() bool { return d.Image != "" }

type rule struct {
	heading string
	image   ImageRef
	accent  string
	// useAccentDefault takes the host brand color instead of accent.
	useAccentDefault bool
	texts            Message
}

var (
	warningRule = rule{
		heading: "Humm..",
		image:   ImageBadStatus,
		texts: Message{
			PrimaryText:   "Parece que algo não está correto",
			SecondaryText: "Selecione a rede correta e tente novamente",
		},
	}
	progressRule = rule{
		heading:          "Processando..",
		useAccentDefault: true,
		texts: Message{
			PrimaryText:   "Só um momento...",
			SecondaryText: "Seu pedido está sendo processado",
		},
	}
	successRule = rule{
		heading: "Aee!",
		image:   ImageSuccessStatus,
		accent:  AccentSuccess,
		texts: Message{
			PrimaryText:   "Tudo indo conforme o planejado",
			SecondaryText: "Compra realizada com sucesso",
		},
	}
	errorRule = rule{
		heading: "Ops..",
		image:   ImageErrorStatus,
		accent:  AccentError,
		texts: Message{
			PrimaryText:   "Aguarde uns minutos e tente novamente",
			SecondaryText: "Caso o erro persista entre em contato conosco.",
		},
	}
)

// rules covers every status.Kind. Connection errors and closed wallet modals
// have no dedicated presentation and share the generic error rule.
var rules = map[status.Kind]rule{
	status.KindUnknown:           errorRule,
	status.KindNetworkError:      warningRule,
	status.KindInstallationError: warningRule,
	status.KindConnectionError:   errorRule,
	status.KindModalClosed:       errorRule,
	status.KindPaymentInProgress: progressRule,
	status.KindPaymentSuccess:    successRule,
	status.KindEmailSuccess:      successRule,
}

// Resolve maps a status code and optional overrides to renderable data.
// accentDefault is the host brand color, used by the in-progress status only.
func Resolve(code status.Code, msg Message, accentDefault string) Data {
	r, ok := rules[status.KindOf(code)]
	if !ok {
		r = errorRule
	}

	texts := msg.Merge(r.texts)
	accent := r.accent
	if r.useAccentDefault {
		accent = accentDefault
	}

	return Data{
		Heading:       r.heading,
		PrimaryText:   texts.PrimaryText,
		SecondaryText: texts.SecondaryText,
		AccentColor:   accent,
		Image:         r.image,
	}
}
