package services

import "context"

// MailSvcFacade delivers outbound mail. Delivery failure is surfaced as a
// transport error; nothing in the core retries it.
type MailSvcFacade interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// MediaSvcFacade uploads a base64-encoded image and returns its public URL.
type MediaSvcFacade interface {
	UploadImage(ctx context.Context, base64Image string) (string, error)
}
