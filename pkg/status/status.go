package status

// Code identifies a wallet, payment or e-mail event.
type Code string

// Known status codes.
const (
	WrongNetwork             Code = "wallets.wrongNetwork"
	MetamaskInstallation     Code = "metamask.installation"
	MetamaskConnection       Code = "metamask.connection"
	WalletConnectModalClosed Code = "walletConnect.modalClosed"
	TorusModalClosed         Code = "torus.modalClosed"
	PaymentInProgress        Code = "payment.inProgress"
	PaymentSuccess           Code = "payment.success"
	EmailSendSuccess         Code = "email.send.success"
)

// String implements fmt.Stringer.
func (c Code) String() string { return string(c) }

// Valid reports whether the code is non-empty.
func (c Code) Valid() bool { return c != "" }

// Kind is the presentation category of a status code.
// KindUnknown is the fallback for any code the registry does not know.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetworkError
	KindInstallationError
	KindConnectionError
	KindModalClosed
	KindPaymentInProgress
	KindPaymentSuccess
	KindEmailSuccess
)

var kindNames = [...]string{
	KindUnknown:           "unknown",
	KindNetworkError:      "network_error",
	KindInstallationError: "installation_error",
	KindConnectionError:   "connection_error",
	KindModalClosed:       "modal_closed",
	KindPaymentInProgress: "payment_in_progress",
	KindPaymentSuccess:    "payment_success",
	KindEmailSuccess:      "email_success",
}

// String returns the snake_case name of the kind, used as a metrics label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Provider names a wallet provider the site can connect through.
type Provider string

const (
	ProviderMetamask      Provider = "metamask"
	ProviderWalletConnect Provider = "wallet-connect"
	ProviderTorus         Provider = "torus"
)

// Providers returns every supported wallet provider.
func Providers() []Provider {
	return []Provider{ProviderMetamask, ProviderWalletConnect, ProviderTorus}
}
