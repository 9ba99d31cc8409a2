// Package config loads typed configuration structs from the environment.
//
// The first call to Load reads a .env file from the working directory when
// one exists (github.com/joho/godotenv), then parses variables into the target
// struct by its `env` tags (github.com/caarlos0/env/v11). Each struct type is
// parsed once; later calls return the cached copy.
//
// A struct whose pointer implements Validator is validated right after
// parsing, and a failing validation is not cached:
//
//	type Site struct {
//		Title string `env:"SITE_TITLE" envDefault:"Landing"`
//	}
//
//	func (s *Site) Validate() error {
//		if s.Title == "" {
//			return errors.New("title is required")
//		}
//		return nil
//	}
//
//	var site Site
//	config.MustLoad(&site)
//
// Errors wrap ErrParsingConfig or ErrInvalidConfig and can be checked with
// errors.Is.
package config
