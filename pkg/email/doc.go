// Package email sends transactional emails through a provider-agnostic
// EmailSender interface.
//
// Two implementations are provided:
//   - the Postmark client for production delivery with open and link tracking
//   - DevSender for local development, which writes each message as an HTML
//     file plus a JSON metadata file
//
// New picks between them based on Config:
//
//	sender, err := email.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	body, err := templates.Render(ctx, templates.ContactEmail(msg))
//	if err != nil {
//	    return err
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   cfg.SupportEmail,
//	    Subject:  "New contact request",
//	    BodyHTML: body,
//	    Tag:      "contact",
//	})
//
// All senders validate SendEmailParams before sending. Errors wrap one of
// ErrInvalidConfig, ErrInvalidParams or ErrFailedToSendEmail and can be
// checked with errors.Is.
package email
