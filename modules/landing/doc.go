// Package landing is the web module of the landing site.
//
// Each service mounts its own chi router:
//
//	PageService          GET  /, GET /config
//	NotificationService  GET  /notifications, POST /notifications,
//	                     POST /notifications/close, GET /notifications/stream
//	ContactService       POST /contact
//	ContractService      GET  /contract/qr.png
//
// Every browser gets a session id in a signed cookie and one notification
// channel per session. The page subscribes to /notifications/stream, so an
// emit or close from any request of the session patches the modal in every
// open tab.
//
// The contact form also works without JavaScript: a plain post gets the whole
// page back with the modal open. WithContactLimiter puts a token bucket in
// front of POST /contact keyed by client address and session.
package landing
