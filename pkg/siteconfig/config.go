package siteconfig

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/currency"

	"github.com/dmitrymomot/landing/pkg/status"
)

// ErrInvalidConfig is joined with the reason of every validation failure.
var ErrInvalidConfig = errors.New("siteconfig: invalid config")

// DefaultAccent is used when no main color is configured.
const DefaultAccent = "#FDC921"

type NetworkType string

const (
	Testnet NetworkType = "testnet"
	Mainnet NetworkType = "mainnet"
)

type Blockchain string

const (
	Ethereum Blockchain = "ethereum"
	Polygon  Blockchain = "polygon"
)

// Supported display currencies.
var supportedCurrencies = []currency.Unit{currency.BRL, currency.USD}

// Wallet social login verifiers accepted in SocialLoginVerifiers.
var loginVerifiers = []string{
	"google", "facebook", "reddit", "discord", "twitch", "apple", "github",
	"linkedin", "twitter", "weibo", "line", "email_password", "passwordless",
}

var (
	colorRegex   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Config is the site configuration shared by every page and handler.
type Config struct {
	Title                string            `env:"SITE_TITLE" envDefault:"NFT Landing" json:"title"`
	MainColor            string            `env:"SITE_MAIN_COLOR" envDefault:"#FDC921" json:"mainColor"`
	NetworkType          NetworkType       `env:"SITE_NETWORK_TYPE" envDefault:"testnet" json:"networkType"`
	Blockchain           Blockchain        `env:"SITE_BLOCKCHAIN" envDefault:"ethereum" json:"blockchain"`
	ContractAddress      string            `env:"SITE_CONTRACT_ADDRESS" json:"contractAddress"`
	Currency             string            `env:"SITE_CURRENCY" envDefault:"BRL" json:"currency"`
	APIProvider          bool              `env:"SITE_API_PROVIDER" json:"apiProvider"`
	SocialLogin          bool              `env:"SITE_SOCIAL_LOGIN" json:"socialLogin"`
	SocialLoginVerifiers []string          `env:"SITE_SOCIAL_LOGIN_VERIFIERS" envSeparator:"," json:"socialLoginVerifiers"`
	WalletProviders      []status.Provider `env:"SITE_WALLET_PROVIDERS" envSeparator:"," envDefault:"metamask,wallet-connect,torus" json:"walletProviders"`
}

// Validate implements config.Validator.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if c.MainColor != "" && !colorRegex.MatchString(c.MainColor) {
		errs = append(errs, fmt.Errorf("main color %q is not a hex color", c.MainColor))
	}
	switch c.NetworkType {
	case Testnet, Mainnet:
	default:
		errs = append(errs, fmt.Errorf("unknown network type %q", c.NetworkType))
	}
	switch c.Blockchain {
	case Ethereum, Polygon:
	default:
		errs = append(errs, fmt.Errorf("unknown blockchain %q", c.Blockchain))
	}
	if c.ContractAddress != "" && !addressRegex.MatchString(c.ContractAddress) {
		errs = append(errs, fmt.Errorf("contract address %q is not a 0x-prefixed hex address", c.ContractAddress))
	}
	if _, err := c.currencyUnit(); err != nil {
		errs = append(errs, err)
	}
	for _, v := range c.SocialLoginVerifiers {
		if !slices.Contains(loginVerifiers, v) {
			errs = append(errs, fmt.Errorf("unknown social login verifier %q", v))
		}
	}
	if c.SocialLogin && len(c.SocialLoginVerifiers) == 0 {
		errs = append(errs, errors.New("social login needs at least one verifier"))
	}
	for _, p := range c.WalletProviders {
		if !slices.Contains(status.Providers(), p) {
			errs = append(errs, fmt.Errorf("unknown wallet provider %q", p))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// AccentColor returns the main color, or DefaultAccent when unset.
func (c Config) AccentColor() string {
	if c.MainColor == "" {
		return DefaultAccent
	}
	return c.MainColor
}

func (c Config) IsMainnet() bool { return c.NetworkType == Mainnet }

func (c Config) currencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency %q is not an ISO 4217 code", c.Currency)
	}
	if !slices.Contains(supportedCurrencies, unit) {
		return currency.Unit{}, fmt.Errorf("currency %s is not supported", unit)
	}
	return unit, nil
}
