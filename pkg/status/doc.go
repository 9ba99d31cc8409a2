// Package status holds the registry of wallet, payment and e-mail status codes
// that the landing site knows how to present.
//
// A Code is an opaque string. Any string is accepted by the rest of the
// system; codes missing from the registry classify as KindUnknown, which is
// a regular outcome and not an error.
//
//	kind := status.KindOf("payment.success") // status.KindPaymentSuccess
//	kind = status.KindOf("whatever")          // status.KindUnknown
//
//	entry, ok := status.Lookup(status.WrongNetwork)
//	if ok {
//		fmt.Println(entry.ErrorCode, entry.Message) // 1001 A sua carteira não está conectada à rede correta
//	}
package status
