package views

import (
	"github.com/dmitrymomot/landing/pkg/notification"
	"github.com/dmitrymomot/landing/pkg/siteconfig"
)

// ModalID is the id of the element modal patches target.
const ModalID = "notification-modal"

// ModalSelector selects the modal container.
const ModalSelector = "#" + ModalID

const headingID = ModalID + "-heading"

func borderColor(d notification.Data) string {
	if d.AccentColor == "" {
		return siteconfig.DefaultAccent
	}
	return d.AccentColor
}

func spinnerColor(accent string) string {
	if accent == "" {
		return siteconfig.DefaultAccent
	}
	return accent
}

func imageSrc(img notification.ImageRef) string {
	return "/static/" + string(img) + ".svg"
}
