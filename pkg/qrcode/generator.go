package qrcode

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content is empty or whitespace only.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrInvalidAddress is returned for anything but a 0x-prefixed 20-byte hex address.
	ErrInvalidAddress = errors.New("invalid contract address")
	// ErrorFailedToGenerateQRCode is returned when the encoder fails.
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

const defaultSize = 256

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Generate creates a PNG QR code of content. Non-positive sizes use 256px.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image returns the QR code as a data URI usable in an img src.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// ContractURI returns the wallet URI of an EVM contract address, e.g.
// "ethereum:0xAbC...". Every supported chain uses the ethereum scheme.
func ContractURI(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !addressRegex.MatchString(address) {
		return "", ErrInvalidAddress
	}
	return "ethereum:" + address, nil
}

// Contract renders the QR code of ContractURI(address).
func Contract(address string, size int) ([]byte, error) {
	uri, err := ContractURI(address)
	if err != nil {
		return nil, err
	}
	return Generate(uri, size)
}
