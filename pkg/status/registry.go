package status

// Entry describes a registered status code.
// ErrorCode is zero for codes that are not errors.
type Entry struct {
	Code      Code
	Kind      Kind
	ErrorCode int
	Message   string
}

// registry is ordered; Entries returns it in this order.
var registry = []Entry{
	{
		Code:      MetamaskInstallation,
		Kind:      KindInstallationError,
		ErrorCode: 1000,
		Message:   "Não foi encontrada a instalação do metamask",
	},
	{
		Code:      WrongNetwork,
		Kind:      KindNetworkError,
		ErrorCode: 1001,
		Message:   "A sua carteira não está conectada à rede correta",
	},
	{
		Code:      MetamaskConnection,
		Kind:      KindConnectionError,
		ErrorCode: 1003,
		Message:   "Metamask não está conectado a esta loja",
	},
	{Code: WalletConnectModalClosed, Kind: KindModalClosed, ErrorCode: 1004},
	{Code: TorusModalClosed, Kind: KindModalClosed, ErrorCode: 1005},
	{Code: PaymentInProgress, Kind: KindPaymentInProgress},
	{Code: PaymentSuccess, Kind: KindPaymentSuccess},
	{Code: EmailSendSuccess, Kind: KindEmailSuccess},
}

var byCode = func() map[Code]Entry {
	m := make(map[Code]Entry, len(registry))
	for _, e := range registry {
		m[e.Code] = e
	}
	return m
}()

// Lookup returns the registry entry for code.
func Lookup(code Code) (Entry, bool) {
	e, ok := byCode[code]
	return e, ok
}

// KindOf classifies code. Unregistered codes yield KindUnknown.
func KindOf(code Code) Kind {
	if e, ok := byCode[code]; ok {
		return e.Kind
	}
	return KindUnknown
}

// Entries returns a copy of all registered entries.
func Entries() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}
