// Package qrcode generates QR code images as raw PNG bytes or as data URIs,
// on top of github.com/skip2/go-qrcode.
//
// Contract and ContractURI encode an EVM contract address as a wallet URI so
// visitors can open the collection contract from a phone wallet.
//
//	png, err := qrcode.Contract(cfg.ContractAddress, 320)
//	if errors.Is(err, qrcode.ErrInvalidAddress) {
//	    // not a 0x-prefixed 20-byte hex address
//	}
package qrcode
