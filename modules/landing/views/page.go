package views

import (
	"github.com/dmitrymomot/landing/modules/landing/content"
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
)

// PageParams contains data for rendering the landing page.
type PageParams struct {
	Config  siteconfig.Config
	Content *content.Content
	Modal   notification.State
}
